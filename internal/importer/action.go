package importer

import (
	"strings"

	"tradeimport/pkg/contracts/domain"
)

// Broker action synonyms, grouped by normalized action. Matching is by
// substring containment on the uppercased token, so single-letter entries are
// deliberately absent. The lists are static configuration, never mutated.
var buyPatterns = []string{
	"BUY", "BOUGHT", "BTO",
	"BUY TO OPEN", "BUY OPEN", "BUY LONG", "OPEN LONG",
	"BUY MARKET", "BUY LMT", "BUY LIMIT", "BUYL",
	"PURCHASE", "ACQUIRE", "ACQUISITION",
	"REINVESTMENT", "REINVEST", "DIVIDEND REINVEST",
	"YOU BOUGHT", "EXERCISE", "EXERCISED",
	"OPENING PURCHASE", "LONG", "LNG",
	"ENTRY LONG", "ENTRY BUY", "INITIAL BUY", "BUY IN",
	"LONG ENTRY", "LONG INIT", "LONG IN",
	"BUY ORDER", "BUY TXN", "BUY TRANSACTION",
}

var buyToCoverPatterns = []string{
	"BUYTOCOVER", "BUY TO COVER", "BTC",
	"COVER", "COVER SHORT", "COVERING", "CVR", "CVRSHRT",
	"BUY TO CLOSE", "CLOSE SHORT", "CLOSE SHORT POSITION",
	"EXIT SHORT", "SHORT COVER", "SHORTCOVER", "COVER POSITION",
	"SHORT EXIT", "SHORT BUY", "BTSC", "BUY SHORT CLOSE",
	"REMOVE SHORT", "REMOVE SHORT POS", "UNSHORT", "REVERSE SHORT",
	"B2C", "SHORT OUT", "SHORT CLOSE",
}

var sellPatterns = []string{
	"SELL", "SOLD", "SLD",
	"SELL TO CLOSE", "SELL CLOSE", "SELL LONG", "CLOSE LONG",
	"SELL MARKET", "SELL LMT", "SELL LIMIT", "SELLL",
	"DISPOSAL", "DISP", "DISPOSITION", "LIQUIDATE", "LIQUIDATION",
	"YOU SOLD", "REDEMPTION",
	"CLOSING SALE",
	"WITHDRAW", "WTHDR",
}

var sellShortPatterns = []string{
	"SELLSHORT", "SELL SHORT", "SHORT",
	"SELL TO OPEN", "SELL OPEN", "OPEN SHORT", "SHORT OPEN",
	"SHORT MARKET", "SHORT LMT", "SHORT LIMIT",
	"SHTSELL", "SHORT SELL", "SHORTING",
	"ENTRY SHORT", "SHORT ENTRY", "INITIAL SHORT", "SHORT INIT",
}

// ClassifyAction maps a raw broker action string to the normalized taxonomy.
// The function is pure and case/whitespace-insensitive. INVALID is returned
// when nothing matches; callers must treat that as a fatal row condition,
// never as a default.
func ClassifyAction(raw string) domain.TradeAction {
	action := strings.ToUpper(strings.TrimSpace(raw))
	if action == "" {
		return domain.ActionInvalid
	}

	// Exercise and assignment notices arrive as full sentences; the keyword
	// pairs identify them before the synonym lists get a chance to mismatch.
	if strings.Contains(action, "EXERCISE") && strings.Contains(action, "OPTION") {
		return domain.ActionBuy
	}
	if strings.Contains(action, "ASSIGN") && strings.Contains(action, "OPTION") {
		return domain.ActionSell
	}

	// Cover and short synonyms frequently contain "BUY" or "SELL", so the
	// specific lists must run before the generic ones.
	for _, pattern := range buyToCoverPatterns {
		if strings.Contains(action, pattern) {
			return domain.ActionBuyToCover
		}
	}
	for _, pattern := range sellShortPatterns {
		if strings.Contains(action, pattern) {
			return domain.ActionSellShort
		}
	}
	for _, pattern := range buyPatterns {
		if strings.Contains(action, pattern) {
			return domain.ActionBuy
		}
	}
	for _, pattern := range sellPatterns {
		if strings.Contains(action, pattern) {
			return domain.ActionSell
		}
	}

	// Dividend reinvestment is a purchase of the underlying.
	if strings.Contains(action, "DIVIDEND") ||
		(strings.Contains(action, "DIV") && strings.Contains(action, "REINV")) {
		return domain.ActionBuy
	}

	return domain.ActionInvalid
}
