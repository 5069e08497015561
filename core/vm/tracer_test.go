package vm

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/eth2030/evmstack/log"
)

type pushRecord struct {
	value Word
	depth int
}

// recordingTracer collects every push it sees.
type recordingTracer struct {
	records []pushRecord
}

func (r *recordingTracer) OnPush(value Word, depth int) {
	r.records = append(r.records, pushRecord{value, depth})
}

func TestTracer_OneRecordPerPush(t *testing.T) {
	rec := &recordingTracer{}
	st := NewStack(WithTracer(rec))

	st.Push(WordFromUint64(1))
	st.Push(WordFromUint64(2))
	st.Pop()
	st.Swap(0)
	st.PushSize(3)

	want := []pushRecord{
		{WordFromUint64(1), 1},
		{WordFromUint64(2), 2},
		{WordFromUint64(3), 2},
	}
	if len(rec.records) != len(want) {
		t.Fatalf("got %d records, want %d", len(rec.records), len(want))
	}
	for i := range want {
		if rec.records[i] != want[i] {
			t.Errorf("record %d = %+v, want %+v", i, rec.records[i], want[i])
		}
	}
}

func TestTracer_NoRecordOnOverflow(t *testing.T) {
	rec := &recordingTracer{}
	st := NewStack(WithTracer(rec))
	fill(t, st, StackLimit)
	st.Push(WordFromUint64(1))

	if len(rec.records) != StackLimit {
		t.Fatalf("got %d records, want %d", len(rec.records), StackLimit)
	}
}

func TestTracer_NilDisables(t *testing.T) {
	st := NewStack(WithTracer(nil))
	if err := st.PushSize(1); err != nil {
		t.Fatalf("PushSize with nil tracer: %v", err)
	}
}

func TestLogTracer(t *testing.T) {
	var buf bytes.Buffer
	l := log.NewWriter(&buf, slog.LevelDebug).Module("stack")
	st := NewStack(WithTracer(NewLogTracer(l)))

	if err := st.PushSize(0xff); err != nil {
		t.Fatal(err)
	}

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("unmarshal: %v (raw: %s)", err, buf.String())
	}
	if entry["msg"] != "push" {
		t.Errorf("msg = %v, want push", entry["msg"])
	}
	if entry["value"] != "0xff" {
		t.Errorf("value = %v, want 0xff", entry["value"])
	}
	if entry["depth"] != float64(1) {
		t.Errorf("depth = %v, want 1", entry["depth"])
	}
	if entry["module"] != "stack" {
		t.Errorf("module = %v, want stack", entry["module"])
	}
}

func TestLogTracer_SilentAboveDebug(t *testing.T) {
	var buf bytes.Buffer
	st := NewStack(WithTracer(NewLogTracer(log.NewWriter(&buf, slog.LevelInfo))))
	st.PushSize(1)
	if strings.TrimSpace(buf.String()) != "" {
		t.Fatalf("info-level logger wrote push record: %s", buf.String())
	}
}

func TestMetricsTracer(t *testing.T) {
	mt := NewMetricsTracer()
	st := NewStack(WithTracer(mt))
	fill(t, st, 5)
	st.Pop()
	st.Pop()
	st.PushSize(9)

	if mt.Pushes.Value() != 6 {
		t.Errorf("pushes = %d, want 6", mt.Pushes.Value())
	}
	if mt.PeakDepth.Value() != 5 {
		t.Errorf("peak depth = %d, want 5", mt.PeakDepth.Value())
	}
}

func TestMultiTracer(t *testing.T) {
	a, b := &recordingTracer{}, &recordingTracer{}
	var calls int
	st := NewStack(WithTracer(MultiTracer(a, nil, b, StackTraceFunc(func(Word, int) { calls++ }))))
	fill(t, st, 3)

	if len(a.records) != 3 || len(b.records) != 3 || calls != 3 {
		t.Fatalf("records = %d, %d, %d; want 3 each", len(a.records), len(b.records), calls)
	}
}
