package options

import (
	"github.com/spf13/cobra"
)

// RecordOptions
type RecordOptions struct {
	Stars int
	Tag   int64
}

func AddStarsArg(cmd *cobra.Command, o *RecordOptions) {
	cmd.Flags().IntVarP(&o.Stars, "stars", "s", 5,
		"Star rating for the book, 1 to 5.")
}

func AddTagArg(cmd *cobra.Command, o *RecordOptions) {
	cmd.Flags().Int64VarP(&o.Tag, "tag", "t", 0,
		"Commendation tag id to stamp on the game.")
}
