package services

import (
	"fmt"

	"github.com/line/line-bot-sdk-go/linebot"
	"github.com/sirupsen/logrus"
)

// ReportSharer pushes generated report text to a LINE recipient. The
// rest of the sharing surface (clipboard, native share sheet) lives in
// the page, not here.
type ReportSharer struct {
	bot         *linebot.Client
	recipientID string
}

// NewReportSharer returns a disabled sharer (nil bot) when the channel
// credentials or recipient are missing.
func NewReportSharer(channelSecret, channelToken, recipientID string) *ReportSharer {
	if channelSecret == "" || channelToken == "" || recipientID == "" {
		logrus.Warn("LINE report sharing disabled: missing channel credentials or recipient")
		return &ReportSharer{}
	}

	bot, err := linebot.New(channelSecret, channelToken)
	if err != nil {
		logrus.WithError(err).Error("Cannot create LINE bot client, report sharing disabled")
		return &ReportSharer{}
	}
	return &ReportSharer{bot: bot, recipientID: recipientID}
}

// Enabled reports whether sharing is configured.
func (rs *ReportSharer) Enabled() bool {
	return rs.bot != nil
}

// Share pushes the report text as a single message.
func (rs *ReportSharer) Share(text string) error {
	if rs.bot == nil {
		return fmt.Errorf("LINE report sharing is not configured")
	}
	if _, err := rs.bot.PushMessage(rs.recipientID, linebot.NewTextMessage(text)).Do(); err != nil {
		return fmt.Errorf("LINE push failed: %v", err)
	}
	return nil
}
