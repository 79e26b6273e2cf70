package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComplaintStatusValid(t *testing.T) {
	for _, status := range []ComplaintStatus{StatusPending, StatusInProgress, StatusCompleted} {
		require.True(t, status.Valid(), string(status))
	}
	for _, status := range []ComplaintStatus{"", "done", "Pending", "in progress"} {
		require.False(t, status.Valid(), string(status))
	}
}

func TestComplaintJSONFieldNames(t *testing.T) {
	raw, err := json.Marshal(ComplaintModel{PhoneNumber: "+1-555-0100", Status: StatusPending})
	require.NoError(t, err)

	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &fields))
	for _, key := range []string{"id", "phoneNumber", "category", "description", "status", "createdAt"} {
		require.Contains(t, fields, key)
	}
}
