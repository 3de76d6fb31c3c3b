package extension

import (
	"fmt"
	"strings"

	"vendor_rewards/internal"
	"vendor_rewards/internal/db/models"
	"vendor_rewards/internal/services"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func DefaultErrorMessage(chatID int64) tgbotapi.Chattable {
	return ErrorMessage(chatID, "Something went wrong, please try again.")
}

func ErrorMessage(chatID int64, text string) tgbotapi.Chattable {
	return tgbotapi.NewMessage(chatID, text)
}

func FormatVote(vote *models.Vote) string {
	vendor := vote.VendorID
	if vote.Vendor != nil && vote.Vendor.Name != "" {
		vendor = vote.Vendor.Name
		if vote.Vendor.ZoneName != "" {
			vendor = fmt.Sprintf("%s (%s)", vote.Vendor.Name, vote.Vendor.ZoneName)
		}
	}

	return fmt.Sprintf("%s · %s · %s · +%d · %s",
		internal.Format(vote.CreatedAt),
		vendor,
		vote.Kind.CapitalizedString(),
		vote.TokenReward,
		vote.DistributionStatus.CapitalizedString(),
	)
}

func FormatSummary(summary services.DistributionSummary) string {
	var b strings.Builder

	if summary.Succeeded == 0 && summary.Failed == 0 {
		return "Nothing to send right now."
	}

	fmt.Fprintf(&b, "Sent %d tokens in %d transfers.", summary.Distributed, summary.Succeeded)
	if summary.Failed > 0 {
		fmt.Fprintf(&b, "\n%d transfers failed, use /retry_distributions later.", summary.Failed)
	}

	return b.String()
}
