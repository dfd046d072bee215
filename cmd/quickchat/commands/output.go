package commands

import (
	"fmt"
	"io"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"

	"quickchat/internal/domain"
	"quickchat/internal/validate"
)

// createMessage checks the caller-side contracts, then asks the registry for a slot.
func createMessage(reg domain.MessageRegistry, sender, recipient, content string) (*domain.Message, error) {
	draft := validate.Draft{Sender: sender, Recipient: recipient, Content: content}
	if err := validate.CheckDraft(draft); err != nil {
		return nil, err
	}
	return reg.Create(sender, recipient, content)
}

// parseID accepts only ids that name a pool slot.
func parseID(s string) (domain.MessageID, error) {
	id := domain.MessageID(s)
	if _, err := id.Slot(); err != nil {
		return "", err
	}
	return id, nil
}

func success(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, color.Green.Sprintf(format, args...))
}

func notice(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, color.Yellow.Sprintf(format, args...))
}

// renderMessages prints msgs as a borderless table.
func renderMessages(w io.Writer, msgs []*domain.Message) {
	if len(msgs) == 0 {
		notice(w, "No messages.")
		return
	}
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "From", "To", "Message", "Hash"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	for _, m := range msgs {
		table.Append([]string{
			m.ID().String(),
			m.Sender(),
			m.Recipient(),
			m.Content(),
			m.ContentHash().String(),
		})
	}
	table.Render()
}
