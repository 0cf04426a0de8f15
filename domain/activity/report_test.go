package activity

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestReportValidate(t *testing.T) {
	tests := []struct {
		name    string
		report  Report
		wantErr bool
	}{
		{
			name:   "empty report is valid",
			report: Report{},
		},
		{
			name: "entity breakdown on one day",
			report: Report{Results: []Day{
				{Date: "2024-06-01"},
				{Date: "2024-06-02", Breakdown: &Breakdown{
					Entities: map[string]EntityUsage{"t-1": {}},
				}},
			}},
		},
		{
			name: "no breakdown anywhere",
			report: Report{Results: []Day{
				{Date: "2024-06-01"},
				{Date: "2024-06-02"},
			}},
			wantErr: true,
		},
		{
			name: "breakdown present but entities empty",
			report: Report{Results: []Day{
				{Date: "2024-06-01", Breakdown: &Breakdown{}},
			}},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.report.Validate()
			if tt.wantErr {
				if !errors.Is(err, ErrMalformedData) {
					t.Errorf("got %v, want ErrMalformedData", err)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestReportDecode(t *testing.T) {
	payload := `{
		"results": [{
			"date": "2024-06-01",
			"metrics": {
				"spend": 1.25,
				"prompt_tokens": 700,
				"completion_tokens": 300,
				"cache_read_input_tokens": 50,
				"total_tokens": 1000,
				"successful_requests": 9,
				"failed_requests": 1,
				"api_requests": 10
			},
			"breakdown": {
				"entities": {
					"t-alpha": {
						"metrics": {"total_tokens": 1000},
						"api_key_breakdown": {
							"sk-hash": {
								"metrics": {"total_tokens": 1000},
								"metadata": {"key_alias": "ci-bot", "team_id": "t-alpha"}
							}
						}
					}
				},
				"model_groups": {
					"gpt-4o": {"metrics": {"total_tokens": 1000}}
				}
			}
		}],
		"metadata": {"page": 1, "total_pages": 3, "has_more": true}
	}`

	var report Report
	if err := json.Unmarshal([]byte(payload), &report); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if len(report.Results) != 1 {
		t.Fatalf("got %d days", len(report.Results))
	}
	d := report.Results[0]
	if d.Metrics.Spend != 1.25 || d.Metrics.CacheReadInputTokens != 50 {
		t.Errorf("day metrics = %+v", d.Metrics)
	}

	entity, ok := d.Entities()["t-alpha"]
	if !ok {
		t.Fatal("entity t-alpha missing")
	}
	key := entity.APIKeyBreakdown["sk-hash"]
	if key.Alias() != "ci-bot" || key.TeamID() != "t-alpha" {
		t.Errorf("key metadata = alias %q team %q", key.Alias(), key.TeamID())
	}
	if _, ok := d.ModelGroups()["gpt-4o"]; !ok {
		t.Error("model group gpt-4o missing")
	}

	if report.Metadata == nil || !report.Metadata.HasMore || report.Metadata.TotalPages != 3 {
		t.Errorf("metadata = %+v", report.Metadata)
	}
}

func TestDayAccessorsNilBreakdown(t *testing.T) {
	var d Day
	if d.Entities() != nil {
		t.Error("Entities should be nil without breakdown")
	}
	if d.ModelGroups() != nil {
		t.Error("ModelGroups should be nil without breakdown")
	}
}

func TestKeyUsageAccessorsNilMetadata(t *testing.T) {
	var k KeyUsage
	if k.Alias() != "" || k.TeamID() != "" {
		t.Errorf("nil metadata should yield empty strings, got %q %q", k.Alias(), k.TeamID())
	}
}

func TestWindowParams(t *testing.T) {
	w := Window{
		Start: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 6, 2, 23, 59, 59, 0, time.UTC),
	}
	if got := w.StartParam(); got != "2024.06.01" {
		t.Errorf("StartParam = %q", got)
	}
	if got := w.EndParam(); got != "2024-06-02T23:59:59Z" {
		t.Errorf("EndParam = %q", got)
	}
}
