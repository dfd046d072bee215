package commands

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"quickchat/internal/domain"
)

func execute(t *testing.T, home, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("QUICKCHAT_PASSPHRASE", "")
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append([]string{"--home", home, "--no-color", "--log-level", "error"}, args...))
	err := root.Execute()
	return out.String(), err
}

func Test_Send_Then_Get_Across_Runs(t *testing.T) {
	req := require.New(t)
	home := t.TempDir()

	out, err := execute(t, home, "", "send", "kyl_1", "+27831234567", "hi")
	req.NoError(err)
	req.Contains(out, "Message sent. ID=1 Hash=3329")

	out, err = execute(t, home, "", "get", "1")
	req.NoError(err)
	req.Contains(out, "Message: hi")

	out, err = execute(t, home, "", "list")
	req.NoError(err)
	req.Contains(out, "Free ids: [2 3 4 5 6 7 8 9 10]")
}

func Test_Send_Rejects_Bad_Input(t *testing.T) {
	req := require.New(t)
	home := t.TempDir()

	_, err := execute(t, home, "", "send", "kyl_1", "0831234567", "hi")
	req.ErrorIs(err, domain.ErrInvalidRecipient)

	_, err = execute(t, home, "", "send", "kyl_1", "+27831234567", strings.Repeat("a", 251))
	req.ErrorIs(err, domain.ErrContentTooLong)

	_, err = execute(t, home, "", "get", "11")
	req.Error(err)
}

func Test_Store_Then_Disregard(t *testing.T) {
	req := require.New(t)
	home := t.TempDir()

	out, err := execute(t, home, "", "store", "kyl_1", "+27831234567", "later")
	req.NoError(err)
	req.Contains(out, "Message stored. ID=1")

	out, err = execute(t, home, "", "disregard", "1")
	req.NoError(err)
	req.Contains(out, "Message 1 disregarded.")

	out, err = execute(t, home, "", "list")
	req.NoError(err)
	req.Contains(out, "No messages.")
	req.Contains(out, "Free ids: [1 2 3 4 5 6 7 8 9 10]")
}

func Test_Shell_Session(t *testing.T) {
	req := require.New(t)
	stdin := strings.Join([]string{
		"1", "kyl_1", "+27831234567", "hello there", "s",
		"1", "bob_2", "+27830000000", "hi", "s",
		"1", "bob_2", "+27830000000", "never mind", "d",
		"5",
		"3", "3329",
		"6",
		"7",
		"9",
	}, "\n") + "\n"

	out, err := execute(t, t.TempDir(), stdin, "shell")
	req.NoError(err)
	req.Contains(out, "Message sent. ID=1")
	req.Contains(out, "Message sent. ID=2")
	req.Contains(out, "Message 3 disregarded.")
	req.Contains(out, "Message: hello there")
	req.Contains(out, "Message with hash 3329 deleted.")
	req.Contains(out, "From: kyl_1 -> To: +27831234567")
	req.Contains(out, "Total Messages Sent: 2")
	req.Contains(out, "--- Disregarded Messages ---\nMessage ID: 3")
	req.Contains(out, "Goodbye!")
}

func Test_Shell_Ends_At_EOF(t *testing.T) {
	req := require.New(t)
	out, err := execute(t, t.TempDir(), "8\n", "shell")
	req.NoError(err)
	req.Contains(out, "No messages.")
}

func Test_Shell_Compose_Reprompts_On_Unknown_Action(t *testing.T) {
	req := require.New(t)
	stdin := strings.Join([]string{
		"1", "kyl_1", "+27831234567", "keep me", "x", "k",
		"8",
		"9",
	}, "\n") + "\n"

	out, err := execute(t, t.TempDir(), stdin, "shell")
	req.NoError(err)
	req.Contains(out, `Unknown action "x"; answer s, k or d.`)
	req.Contains(out, "Message stored. ID=1")
	req.NotContains(out, "disregarded")
	req.Contains(out, "keep me")
}
