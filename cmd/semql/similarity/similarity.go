package similarity

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"semql/internal/vecsim"
)

// Cmd scores two raw vector files (packed native-endian float32) against
// each other. Useful for checking stored embedding BLOBs by hand.
var Cmd = &cobra.Command{
	Use:   "similarity <vector-file-a> <vector-file-b>",
	Short: "Compute cosine similarity of two packed float32 vector files",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		b, err := os.ReadFile(args[1])
		if err != nil {
			return err
		}

		score, null, err := vecsim.Cosine(a, b)
		if err != nil {
			return err
		}
		if null {
			fmt.Println("NULL")
			return nil
		}
		fmt.Printf("%.6f\t(%s kernel)\n", score, vecsim.Implementation())
		return nil
	},
}
