package service

import (
	"fmt"
	"strings"

	"github.com/MikeRez0/payoutledger/internal/core/domain"
	"github.com/govalues/decimal"
)

const messageRule = "- - - - - - - - - - - - - - - - -"

// Telegram's legacy Markdown takes a backslash before these outside entities.
var markdownEscaper = strings.NewReplacer("_", "\\_", "*", "\\*", "`", "\\`", "[", "\\[")

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}

// codeSpan cannot escape a backtick, so it is replaced.
func codeSpan(s string) string {
	return strings.ReplaceAll(s, "`", "'")
}

func intakeMessage(order *domain.Order, split *domain.RevenueSplit, ratios domain.SplitRatios) string {
	var b strings.Builder

	fmt.Fprintf(&b, "📦 *New Order Received:* `#%s`\n", codeSpan(order.OrderID))
	b.WriteString(messageRule + "\n")
	fmt.Fprintf(&b, "👤 *Customer:* %s\n", escapeMarkdown(order.CustomerName))
	fmt.Fprintf(&b, "💰 *Amount:* $%.2f\n", order.Amount)
	fmt.Fprintf(&b, "🏢 *Team:* %s\n", escapeMarkdown(order.TeamID))
	fmt.Fprintf(&b, "📍 *Platform:* %s\n", escapeMarkdown(order.Platform))
	b.WriteString(messageRule + "\n")
	b.WriteString("💵 *Revenue Split:*\n")
	fmt.Fprintf(&b, "  •  *Owner:* `$%.2f` (%s)\n", split.Owner, percent(ratios.Owner))
	fmt.Fprintf(&b, "  •  *Team:* `$%.2f` (%s)\n", split.Team, percent(ratios.Team))
	fmt.Fprintf(&b, "  •  *System:* `$%.2f` (%s)", split.System, percent(ratios.System))

	return b.String()
}

func percent(ratio decimal.Decimal) string {
	p, err := ratio.Mul(decimal.Hundred)
	if err != nil {
		return "?"
	}
	return p.Trim(0).String() + "%"
}
