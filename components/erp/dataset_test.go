package erp

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDatasetYAML = `
customers:
  - id: C1
    name: Jane Cooper
    email: jane@example.com
    status: active
    total_orders: 3
    total_spent: 120.5
orders:
  - id: O1
    customer: Jane Cooper
    date: "2024-06-01"
    total: 120.5
    status: shipped
    items: 2
    payment_method: Credit Card
revenue:
  - month: Jan
    revenue: 100
    profit: 20
`

func TestDecodeDataset(t *testing.T) {
	ds, err := DecodeDataset(strings.NewReader(sampleDatasetYAML))
	require.NoError(t, err)
	require.Len(t, ds.Customers, 1)
	assert.Equal(t, 120.5, ds.Customers[0].TotalSpent)
	require.Len(t, ds.Orders, 1)
	assert.Equal(t, "Credit Card", ds.Orders[0].PaymentMethod)
	assert.Len(t, ds.Revenue, 1)
	assert.Empty(t, ds.Products)
}

func TestDecodeDatasetRejectsUnknownFields(t *testing.T) {
	_, err := DecodeDataset(strings.NewReader("customers:\n  - id: C1\n    nickname: JC\n"))
	assert.Error(t, err)
}

func TestDecodeDatasetValidatesRecords(t *testing.T) {
	cases := map[string]string{
		"missing id":     "customers:\n  - name: A\n    status: active\n",
		"duplicate id":   "products:\n  - id: P1\n    status: in_stock\n  - id: P1\n    status: in_stock\n",
		"unknown status": "orders:\n  - id: O1\n    status: lost\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeDataset(strings.NewReader(doc))
			assert.ErrorIs(t, err, ErrInvalidDataset)
		})
	}
}

func TestDecodeEmptyDataset(t *testing.T) {
	ds, err := DecodeDataset(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, ds.Customers)
}

func TestLoadDataset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dataset.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleDatasetYAML), 0o600))
	ds, err := LoadDataset(path)
	require.NoError(t, err)
	assert.Len(t, ds.Customers, 1)

	_, err = LoadDataset(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestDefaultDatasetIsValidAndIsolated(t *testing.T) {
	ds := DefaultDataset()
	require.NoError(t, ds.Validate())
	ds.Customers[0].Name = "changed"
	assert.Equal(t, "Jane Cooper", DefaultDataset().Customers[0].Name)
}

const sampleDatasetJSONC = `{
	// exported from the staging warehouse
	"customers": [
		{"id": "C1", "name": "Jane Cooper", "email": "jane@example.com", "status": "pending"},
	],
	"orders": [
		{"id": "O1", "customer": "Jane Cooper", "date": "2024-06-01", "total": 42, "status": "pending", "items": 1, "payment_method": "PayPal"},
	],
}`

func TestDecodeDatasetJSON(t *testing.T) {
	ds, err := DecodeDatasetJSON(strings.NewReader(sampleDatasetJSONC))
	require.NoError(t, err)
	require.Len(t, ds.Customers, 1)
	assert.Equal(t, CustomerPending, ds.Customers[0].Status)
	require.Len(t, ds.Orders, 1)
	assert.Equal(t, "PayPal", ds.Orders[0].PaymentMethod)

	_, err = DecodeDatasetJSON(strings.NewReader(`{"customers": [{"id": "C1", "status": "vip"}]}`))
	assert.ErrorIs(t, err, ErrInvalidDataset)

	_, err = DecodeDatasetJSON(strings.NewReader(`{"suppliers": []}`))
	assert.Error(t, err)

	_, err = DecodeDatasetJSON(strings.NewReader(`{"customers": [`))
	assert.ErrorIs(t, err, ErrInvalidDataset)
}

func TestLoadDatasetPicksDecoderByExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixtures.jsonc")
	require.NoError(t, os.WriteFile(path, []byte(sampleDatasetJSONC), 0o600))
	ds, err := LoadDataset(path)
	require.NoError(t, err)
	assert.Len(t, ds.Orders, 1)
}
