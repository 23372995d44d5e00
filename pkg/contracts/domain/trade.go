package domain

import (
	"time"
)

// TradeAction is the closed taxonomy of normalized broker actions.
type TradeAction string

const (
	ActionBuy        TradeAction = "BUY"
	ActionSell       TradeAction = "SELL"
	ActionSellShort  TradeAction = "SELLSHORT"
	ActionBuyToCover TradeAction = "BUYTOCOVER"
	// ActionInvalid marks an unclassifiable action string. It never appears
	// on a stored TradeRecord; rows carrying it are rejected.
	ActionInvalid TradeAction = "INVALID"
)

// TradeType distinguishes equity trades from option trades.
type TradeType string

const (
	TradeTypeStock  TradeType = "STOCK"
	TradeTypeOption TradeType = "OPTION"
)

// OptionType is the call/put indicator of an option contract.
type OptionType string

const (
	OptionTypeCall OptionType = "CALL"
	OptionTypePut  OptionType = "PUT"
)

// OptionDetails holds the fields decoded from an OCC option symbol.
type OptionDetails struct {
	USymbol        string     `json:"usymbol"`
	ExpirationDate string     `json:"expirationDate"`
	OptionType     OptionType `json:"optionType"`
	StrikePrice    float64    `json:"strikePrice"`
}

// TradeRecord is a fully normalized trade ready for storage and tax-lot
// matching. Records are built in one shot by the row transformer and never
// mutated afterwards.
//
// For option trades Symbol keeps the raw OCC ticker and USymbol holds the
// underlying; for stock trades Symbol is the underlying itself. Quantity on
// option trades is already multiplied out to underlying units.
type TradeRecord struct {
	Action         TradeAction `json:"action" validate:"required,oneof=BUY SELL SELLSHORT BUYTOCOVER"`
	TradeDate      time.Time   `json:"tradeDate" validate:"required"`
	Symbol         string      `json:"symbol" validate:"required,uppercase"`
	TradeType      TradeType   `json:"trade_type" validate:"required,oneof=STOCK OPTION"`
	USymbol        string      `json:"usymbol,omitempty" validate:"required_if=TradeType OPTION"`
	ExpirationDate string      `json:"expirationDate,omitempty" validate:"required_if=TradeType OPTION,omitempty,datetime=2006-01-02"`
	OptionType     OptionType  `json:"optionType,omitempty" validate:"required_if=TradeType OPTION,omitempty,oneof=CALL PUT"`
	StrikePrice    float64     `json:"strikePrice,omitempty" validate:"required_if=TradeType OPTION,omitempty,gt=0"`
	Quantity       float64     `json:"quantity" validate:"required,gt=0"`
	Price          float64     `json:"price" validate:"gte=0"`
	Commission     float64     `json:"commission"`
	Fee            float64     `json:"fee"`
	NetAmount      float64     `json:"netAmount"`
	PortfolioName  string      `json:"portfolioName" validate:"required"`
}

// IsOption reports whether the record describes an option trade.
func (r *TradeRecord) IsOption() bool {
	return r.TradeType == TradeTypeOption
}
