package main

import (
	"strconv"

	"github.com/spf13/cobra"

	docscabinet "github.com/foladipo/docs-cabinet-cp2-sub000"
)

// Tiers are ordinal, so promotion is just setting a higher number. Already
// issued credentials keep the old tier until they are reissued.
var PromoteCmd = cobra.Command{
	Use:   "promote <login> [tier]",
	Short: "Set an account's privilege tier (default 1, admin)",
	Args:  cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		tier := int(docscabinet.TierAdmin)
		if len(args) == 2 {
			var err error
			tier, err = strconv.Atoi(args[1])
			if err != nil || tier < 0 {
				logger.Fatalf("invalid tier %q", args[1])
			}
		}

		user, err := userStore.GetByLogin(args[0])
		if err != nil {
			logger.Fatal("could not look up user:", err)
		} else if user == nil {
			logger.Fatalf("no user with login %q", args[0])
		}

		user.Tier = docscabinet.PrivilegeTier(tier)
		if err := userStore.Update(user); err != nil {
			logger.Fatal("could not update user:", err)
		}

		logger.Printf("user %s is now tier %d (%s)", user.Login, tier, user.Tier)
	},
}

func init() {
	RootCmd.AddCommand(&PromoteCmd)
}
