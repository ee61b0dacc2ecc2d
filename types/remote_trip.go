package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// RemoteTrip is a trip as the trip backend returns it from GET /trips/.
// Any field may be missing; defaults are applied by the source adapter.
type RemoteTrip struct {
	ID               RemoteID            `json:"id"`
	Title            string              `json:"title"`
	DestinationCache *string             `json:"destination_cache"`
	Stops            []RemoteStop        `json:"stops"`
	StartDate        *string             `json:"start_date"`
	EndDate          *string             `json:"end_date"`
	BudgetLimit      decimal.NullDecimal `json:"budget_limit"`
	TotalSpent       decimal.NullDecimal `json:"total_spent"`
	Status           *string             `json:"status"`
	CreatedAt        *string             `json:"created_at"`
	CoverImageURL    *string             `json:"cover_image_url"`
}

type RemoteStop struct {
	City *RemoteCity `json:"city"`
}

type RemoteCity struct {
	Name string `json:"name"`
}

// RemoteID accepts both JSON numbers and strings. Numbers are kept in their
// decimal text form.
type RemoteID string

func (id *RemoteID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("invalid trip id: %w", err)
		}
		*id = RemoteID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid trip id: %w", err)
	}
	if i, err := n.Int64(); err == nil {
		*id = RemoteID(strconv.FormatInt(i, 10))
		return nil
	}
	*id = RemoteID(n.String())
	return nil
}

func (id RemoteID) String() string {
	return string(id)
}
