package report

import (
	"fmt"
	"io"

	"github.com/thirdweb-dev/safecosts/internal/common"
)

// PrintCosts writes "<sender> <cost in ether>" per entry, in the order given.
func PrintCosts(w io.Writer, costs []common.CostEntry) error {
	for _, entry := range costs {
		if _, err := fmt.Fprintf(w, "%s %s\n", entry.Sender, common.FormatEther(entry.TotalGasCost)); err != nil {
			return err
		}
	}
	return nil
}
