package entities

import (
	"encoding/json"
	"testing"
	"time"
)

func TestFlagMarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		flag Flag
		want string
	}{
		{"unset", Flag(false), "0"},
		{"set", Flag(true), "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.flag)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestFlagUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Flag
		wantErr bool
	}{
		{"zero", "0", false, false},
		{"one", "1", true, false},
		{"other number coerces to set", "7", true, false},
		{"float", "0.0", false, false},
		{"bool true", "true", true, false},
		{"bool false", "false", false, false},
		{"string rejected", `"1"`, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f Flag
			err := json.Unmarshal([]byte(tt.input), &f)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if f != tt.want {
				t.Errorf("got %v, want %v", f, tt.want)
			}
		})
	}
}

func TestFlagScan(t *testing.T) {
	var f Flag
	if err := f.Scan(int64(1)); err != nil {
		t.Fatalf("scan int64: %v", err)
	}
	if !bool(f) {
		t.Error("scan int64(1) should set the flag")
	}

	if err := f.Scan(nil); err != nil {
		t.Fatalf("scan nil: %v", err)
	}
	if bool(f) {
		t.Error("scan nil should clear the flag")
	}
}

func TestTimestampRoundTrip(t *testing.T) {
	ts := Timestamp(time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC))

	data, err := json.Marshal(ts)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `"2024-03-15 09:30:00"` {
		t.Errorf("got %s, want \"2024-03-15 09:30:00\"", data)
	}

	var back Timestamp
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.Time().Equal(ts.Time()) {
		t.Errorf("round trip changed value: %v != %v", back.Time(), ts.Time())
	}
}

func TestTaskJSONShape(t *testing.T) {
	task := Task{
		ID:        3,
		Title:     "Comprar pan",
		Done:      Flag(true),
		CreatedAt: Timestamp(time.Date(2024, 1, 2, 12, 0, 0, 0, time.UTC)),
	}

	data, err := json.Marshal(task)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	want := `{"id":3,"title":"Comprar pan","done":1,"created_at":"2024-01-02 12:00:00"}`
	if string(data) != want {
		t.Errorf("got %s\nwant %s", data, want)
	}
}
