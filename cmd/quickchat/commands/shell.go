package commands

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"quickchat/internal/domain"
)

const shellMenu = `
1) Compose a message
2) Disregard a message by id
3) Delete a sent message by hash
4) Search sent messages by recipient
5) Show the longest sent message
6) Show sender/recipient pairs
7) Full report
8) List stored messages
9) Quit
`

// shellCmd keeps one registry alive across many actions, so sent and
// disregarded history accumulates the way it does in a long-running client.
func shellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactive session over one registry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(appCtx.Messages, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

type shell struct {
	reg domain.MessageRegistry
	in  *bufio.Scanner
	out io.Writer
}

func runShell(reg domain.MessageRegistry, in io.Reader, out io.Writer) error {
	sh := &shell{reg: reg, in: bufio.NewScanner(in), out: out}
	for {
		fmt.Fprint(out, shellMenu)
		choice, ok := sh.prompt("Choose an option: ")
		if !ok {
			return sh.in.Err()
		}
		switch choice {
		case "1":
			sh.compose()
		case "2":
			sh.disregard()
		case "3":
			sh.delete()
		case "4":
			if recipient, ok := sh.prompt("Recipient: "); ok {
				renderMessages(out, reg.SearchByRecipient(recipient))
			}
		case "5":
			if msg, ok := reg.LongestMessage(); ok {
				fmt.Fprintln(out, msg.String())
			} else {
				notice(out, "No messages sent yet.")
			}
		case "6":
			pairs := reg.SenderRecipientPairs()
			sort.Strings(pairs)
			fmt.Fprintln(out, "=== Sender-Recipient Pairs ===")
			for _, p := range pairs {
				fmt.Fprintln(out, p)
			}
		case "7":
			fmt.Fprint(out, reg.FullReport())
		case "8":
			renderMessages(out, reg.Stored())
		case "9", "q", "quit":
			fmt.Fprintln(out, "Goodbye!")
			return nil
		default:
			notice(out, "Unknown option %q.", choice)
		}
	}
}

// prompt prints label and reads one trimmed line. ok is false at end of input.
func (sh *shell) prompt(label string) (string, bool) {
	fmt.Fprint(sh.out, label)
	if !sh.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(sh.in.Text()), true
}

func (sh *shell) fail(err error) {
	fmt.Fprintln(sh.out, color.Red.Sprintf("Error: %v", err))
}

func (sh *shell) compose() {
	sender, ok := sh.prompt("Sender: ")
	if !ok {
		return
	}
	recipient, ok := sh.prompt("Recipient cell (+27...): ")
	if !ok {
		return
	}
	content, ok := sh.prompt("Message: ")
	if !ok {
		return
	}
	msg, err := createMessage(sh.reg, sender, recipient, content)
	if err != nil {
		sh.fail(err)
		return
	}
	for {
		action, ok := sh.prompt("Send (s), store (k) or disregard (d)? ")
		if !ok {
			return
		}
		switch strings.ToLower(action) {
		case "s", "send":
			if err := sh.reg.Send(msg); err != nil {
				sh.fail(err)
				return
			}
			success(sh.out, "Message sent. ID=%s Hash=%s", msg.ID(), msg.ContentHash())
		case "k", "store":
			if err := sh.reg.StoreOnly(msg); err != nil {
				sh.fail(err)
				return
			}
			success(sh.out, "Message stored. ID=%s Hash=%s", msg.ID(), msg.ContentHash())
		case "d", "disregard":
			if err := sh.reg.Disregard(msg); err != nil {
				sh.fail(err)
				return
			}
			success(sh.out, "Message %s disregarded.", msg.ID())
		default:
			notice(sh.out, "Unknown action %q; answer s, k or d.", action)
			continue
		}
		return
	}
}

func (sh *shell) disregard() {
	raw, ok := sh.prompt("Message id: ")
	if !ok {
		return
	}
	id, err := parseID(raw)
	if err != nil {
		sh.fail(err)
		return
	}
	msg, found := sh.reg.GetByID(id)
	if !found {
		notice(sh.out, "No message with id %s.", id)
		return
	}
	if err := sh.reg.Disregard(msg); err != nil {
		sh.fail(err)
		return
	}
	success(sh.out, "Message %s disregarded.", id)
}

func (sh *shell) delete() {
	hash, ok := sh.prompt("Content hash: ")
	if !ok {
		return
	}
	deleted, err := sh.reg.DeleteByHash(domain.ContentHash(hash))
	if err != nil {
		sh.fail(err)
		return
	}
	if !deleted {
		notice(sh.out, "No sent message with hash %s.", hash)
		return
	}
	success(sh.out, "Message with hash %s deleted.", hash)
}
