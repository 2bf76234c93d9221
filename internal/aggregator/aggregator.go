package aggregator

import (
	"fmt"
	"sort"

	"github.com/holiman/uint256"
	"github.com/thirdweb-dev/safecosts/internal/common"
)

// Aggregate returns all receipts in chain order and the per-sender cost ranking.
// The result does not depend on the order of the input.
func Aggregate(receipts []common.ReceiptRecord) ([]common.ReceiptRecord, []common.CostEntry) {
	return Ledger(receipts), RankCosts(receipts)
}

// Ledger sorts a copy of receipts ascending by (block number, transaction index).
func Ledger(receipts []common.ReceiptRecord) []common.ReceiptRecord {
	ledger := make([]common.ReceiptRecord, len(receipts))
	copy(ledger, receipts)
	sort.Slice(ledger, func(i, j int) bool {
		a, b := ledger[i], ledger[j]
		if a.BlockNumber != b.BlockNumber {
			return a.BlockNumber < b.BlockNumber
		}
		if a.TxnIndex != b.TxnIndex {
			return a.TxnIndex < b.TxnIndex
		}
		return a.TxnHash < b.TxnHash
	})
	return ledger
}

// RankCosts sums gas cost per sender, sorted descending by total with ties broken by sender.
func RankCosts(receipts []common.ReceiptRecord) []common.CostEntry {
	totals := make(map[string]*uint256.Int)
	for _, receipt := range receipts {
		total, ok := totals[receipt.Sender]
		if !ok {
			total = new(uint256.Int)
			totals[receipt.Sender] = total
		}
		if receipt.GasCost != nil {
			total.Add(total, receipt.GasCost)
		}
	}

	costs := make([]common.CostEntry, 0, len(totals))
	for sender, total := range totals {
		costs = append(costs, common.CostEntry{Sender: sender, TotalGasCost: total})
	}
	sort.Slice(costs, func(i, j int) bool {
		if cmp := costs[i].TotalGasCost.Cmp(costs[j].TotalGasCost); cmp != 0 {
			return cmp > 0
		}
		return costs[i].Sender < costs[j].Sender
	})
	return costs
}

// TotalGasCost sums the gas cost of all receipts.
func TotalGasCost(receipts []common.ReceiptRecord) *uint256.Int {
	total := new(uint256.Int)
	for _, receipt := range receipts {
		if receipt.GasCost != nil {
			total.Add(total, receipt.GasCost)
		}
	}
	return total
}

// CheckUnique fails if a transaction appears more than once, which would count its cost twice.
func CheckUnique(receipts []common.ReceiptRecord) error {
	seen := common.NewSet[string]()
	for _, receipt := range receipts {
		if !seen.Add(receipt.TxnHash) {
			return fmt.Errorf("%w: duplicate receipt for %s", common.ErrReceiptResolution, receipt.TxnHash)
		}
	}
	return nil
}
