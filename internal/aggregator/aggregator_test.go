package aggregator

import (
	"math/rand"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thirdweb-dev/safecosts/internal/common"
)

func receipt(hash, sender string, block, index, cost uint64) common.ReceiptRecord {
	return common.ReceiptRecord{
		Sender:      sender,
		BlockNumber: block,
		TxnIndex:    index,
		TxnHash:     hash,
		Status:      1,
		GasCost:     uint256.NewInt(cost),
	}
}

func costsAsMap(costs []common.CostEntry) map[string]string {
	m := make(map[string]string, len(costs))
	for _, c := range costs {
		m[c.Sender] = c.TotalGasCost.Dec()
	}
	return m
}

func TestRankCosts_Scenario(t *testing.T) {
	costs := RankCosts([]common.ReceiptRecord{
		receipt("0x01", "A", 1, 0, 100),
		receipt("0x02", "B", 2, 0, 300),
		receipt("0x03", "A", 3, 0, 50),
	})

	require.Len(t, costs, 2)
	assert.Equal(t, "B", costs[0].Sender)
	assert.Equal(t, uint64(300), costs[0].TotalGasCost.Uint64())
	assert.Equal(t, "A", costs[1].Sender)
	assert.Equal(t, uint64(150), costs[1].TotalGasCost.Uint64())
}

func TestRankCosts_TiesBrokenBySender(t *testing.T) {
	costs := RankCosts([]common.ReceiptRecord{
		receipt("0x01", "C", 1, 0, 10),
		receipt("0x02", "A", 1, 1, 10),
		receipt("0x03", "B", 1, 2, 10),
	})
	assert.Equal(t, []string{"A", "B", "C"}, []string{costs[0].Sender, costs[1].Sender, costs[2].Sender})
}

func TestLedger_SortsByBlockAndIndex(t *testing.T) {
	input := []common.ReceiptRecord{
		receipt("0x03", "A", 20, 1, 1),
		receipt("0x01", "B", 10, 7, 1),
		receipt("0x02", "A", 20, 0, 1),
		receipt("0x00", "C", 10, 2, 1),
	}
	ledger := Ledger(input)

	hashes := make([]string, len(ledger))
	for i, r := range ledger {
		hashes[i] = r.TxnHash
	}
	assert.Equal(t, []string{"0x00", "0x01", "0x02", "0x03"}, hashes)
	// input untouched
	assert.Equal(t, "0x03", input[0].TxnHash)
}

func TestAggregate_OrderIndependent(t *testing.T) {
	var receipts []common.ReceiptRecord
	senders := []string{"A", "B", "C", "D"}
	for i := 0; i < 40; i++ {
		receipts = append(receipts, receipt(
			uint256.NewInt(uint64(i)).Hex(),
			senders[i%len(senders)],
			uint64(i/3),
			uint64(i%3),
			uint64((i*7919)%1000+1),
		))
	}

	expectedLedger, expectedCosts := Aggregate(receipts)

	rng := rand.New(rand.NewSource(42))
	for round := 0; round < 10; round++ {
		shuffled := make([]common.ReceiptRecord, len(receipts))
		copy(shuffled, receipts)
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

		ledger, costs := Aggregate(shuffled)
		assert.Equal(t, expectedLedger, ledger)
		assert.Equal(t, costsAsMap(expectedCosts), costsAsMap(costs))
		assert.Equal(t, expectedCosts, costs, "ranking is a total order")
	}
}

func TestAggregate_TotalsMatch(t *testing.T) {
	receipts := []common.ReceiptRecord{
		receipt("0x01", "A", 1, 0, 100),
		receipt("0x02", "B", 2, 0, 300),
		receipt("0x03", "A", 3, 0, 50),
		receipt("0x04", "C", 3, 1, 1_000_000_000_000_000_000),
	}
	ledger, costs := Aggregate(receipts)

	rankedTotal := new(uint256.Int)
	for _, c := range costs {
		rankedTotal.Add(rankedTotal, c.TotalGasCost)
	}
	assert.Equal(t, TotalGasCost(ledger), rankedTotal)
	assert.Equal(t, "1000000000000000450", rankedTotal.Dec())
}

func TestAggregate_Empty(t *testing.T) {
	ledger, costs := Aggregate(nil)
	assert.Empty(t, ledger)
	assert.Empty(t, costs)
	assert.True(t, TotalGasCost(nil).IsZero())
}

func TestCheckUnique(t *testing.T) {
	assert.NoError(t, CheckUnique([]common.ReceiptRecord{receipt("0x01", "A", 1, 0, 1), receipt("0x02", "A", 1, 1, 1)}))

	err := CheckUnique([]common.ReceiptRecord{receipt("0x01", "A", 1, 0, 1), receipt("0x01", "A", 1, 0, 1)})
	assert.ErrorIs(t, err, common.ErrReceiptResolution)
}
