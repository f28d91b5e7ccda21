// Package chat talks to the expense assistant.
package chat

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"flowpay/flowpay/cmd/root"
)

// Cmd represents the chat command
var Cmd = &cobra.Command{
	Use:   "chat [message]",
	Short: "Ask the assistant about your expenses and budget",
	Long: `Ask the assistant a free-text question. Replies are grounded in the
current budget snapshot; when the AI service is unreachable, canned
keyword-triggered answers are used instead.`,
	Args: cobra.MinimumNArgs(1),
	Run:  chatFunc,
}

func chatFunc(cmd *cobra.Command, args []string) {
	message := strings.Join(args, " ")
	reply := root.Assistant().Chat(cmd.Context(), message, root.Manager().BudgetSnapshot())
	fmt.Println(reply)
}
