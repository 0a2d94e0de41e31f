package contact

import (
	"fmt"
	"time"

	"github.com/slack-go/slack"
)

const (
	headerText        = "🔔 AutoFlow 새 상담 문의"
	companyFallback   = "-"
	footerLinkLabel   = "AutoFlow 랜딩페이지"
	defaultLandingURL = "https://autoflow.newdev.it"
)

// BuildMessage assembles the notification for one inquiry. The free-text
// section is present only when the inquiry carries a message.
func BuildMessage(in Inquiry, receivedAt time.Time, landingURL string) *slack.WebhookMessage {
	if landingURL == "" {
		landingURL = defaultLandingURL
	}
	company := in.Company
	if company == "" {
		company = companyFallback
	}

	blocks := []slack.Block{
		slack.NewHeaderBlock(slack.NewTextBlockObject(slack.PlainTextType, headerText, true, false)),
		slack.NewSectionBlock(nil, []*slack.TextBlockObject{
			field("담당자명", in.Name),
			field("회사/업체명", company),
		}, nil),
		slack.NewSectionBlock(nil, []*slack.TextBlockObject{
			field("연락처", in.Contact),
			field("관심 솔루션", ResolveSolutionLabel(in.Solution)),
		}, nil),
	}
	if in.Message != "" {
		blocks = append(blocks, slack.NewSectionBlock(field("문의 내용", in.Message), nil, nil))
	}
	blocks = append(blocks,
		slack.NewSectionBlock(nil, []*slack.TextBlockObject{
			field("접수 시간", FormatReceivedAt(receivedAt)),
		}, nil),
		slack.NewDividerBlock(),
		slack.NewContextBlock("", slack.NewTextBlockObject(slack.MarkdownType,
			fmt.Sprintf("via <%s|%s>", landingURL, footerLinkLabel), false, false)),
	)

	return &slack.WebhookMessage{
		Blocks: &slack.Blocks{BlockSet: blocks},
	}
}

func field(title, value string) *slack.TextBlockObject {
	return slack.NewTextBlockObject(slack.MarkdownType, "*"+title+"*\n"+value, false, false)
}

// FormatReceivedAt renders t the way the ko-KR locale prints a date and time,
// e.g. "2026. 3. 9. 오후 2:05:09". Callers convert t to the wanted zone first.
func FormatReceivedAt(t time.Time) string {
	period := "오전"
	if t.Hour() >= 12 {
		period = "오후"
	}
	hour := t.Hour() % 12
	if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%d. %d. %d. %s %d:%02d:%02d",
		t.Year(), int(t.Month()), t.Day(), period, hour, t.Minute(), t.Second())
}
