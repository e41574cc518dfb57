package forecast

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/s0v1x/EULERA/internal/model"
)

const dateLayout = "2006-01-02"

// Tracker owns the append-only forecast history: one record per trading day,
// persisted as CSV lines of date,min_conf,max_conf,f_price. It is the single
// writer of the file; every successful append is flushed synchronously.
type Tracker struct {
	mu      sync.Mutex
	path    string
	records []model.ForecastRecord
	now     func() time.Time
}

// NewTracker loads (or initializes) the history at path.
func NewTracker(path string) (*Tracker, error) {
	t := &Tracker{path: path, now: time.Now}
	if err := t.load(); err != nil {
		return nil, err
	}
	return t, nil
}

// WithNow overrides the time source (tests).
func (t *Tracker) WithNow(now func() time.Time) *Tracker {
	t.now = now
	return t
}

func (t *Tracker) load() error {
	f, err := os.Open(t.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("open forecast history: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return fmt.Errorf("read forecast history: %w", err)
	}

	for i, row := range rows {
		if len(row) != 4 {
			return fmt.Errorf("forecast history line %d: want 4 fields, got %d", i+1, len(row))
		}
		if i == 0 && row[0] == "date" {
			continue // header
		}
		date, err := time.Parse(dateLayout, row[0])
		if err != nil {
			return fmt.Errorf("forecast history line %d: %w", i+1, err)
		}
		minC, err1 := strconv.ParseFloat(row[1], 64)
		maxC, err2 := strconv.ParseFloat(row[2], 64)
		price, err3 := strconv.ParseFloat(row[3], 64)
		if err1 != nil || err2 != nil || err3 != nil {
			return fmt.Errorf("forecast history line %d: malformed numbers", i+1)
		}
		t.records = append(t.records, model.ForecastRecord{
			Date:          date,
			MinConfidence: minC,
			MaxConfidence: maxC,
			ForecastPrice: price,
		})
	}
	return nil
}

// AppendIfNew appends the record only when no record exists for its calendar
// day and the day is not a weekend. Returns true when a record was written;
// a false with nil error is an intentional skip, not a failure.
func (t *Tracker) AppendIfNew(rec model.ForecastRecord) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	day := rec.Date
	if day.IsZero() {
		day = t.now()
	}
	if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return false, nil
	}
	key := day.Format(dateLayout)
	for _, existing := range t.records {
		if existing.Date.Format(dateLayout) == key {
			return false, nil
		}
	}

	rec.Date, _ = time.Parse(dateLayout, key)
	if err := t.flush(rec); err != nil {
		return false, err
	}
	t.records = append(t.records, rec)
	return true, nil
}

// flush appends one CSV line, creating the file (with header) on first write.
func (t *Tracker) flush(rec model.ForecastRecord) error {
	if dir := filepath.Dir(t.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create history dir: %w", err)
		}
	}

	_, statErr := os.Stat(t.path)
	fresh := os.IsNotExist(statErr)

	f, err := os.OpenFile(t.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open forecast history: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if fresh {
		if err := w.Write([]string{"date", "min_conf", "max_conf", "f_price"}); err != nil {
			return err
		}
	}
	line := []string{
		rec.Date.Format(dateLayout),
		strconv.FormatFloat(rec.MinConfidence, 'f', -1, 64),
		strconv.FormatFloat(rec.MaxConfidence, 'f', -1, 64),
		strconv.FormatFloat(rec.ForecastPrice, 'f', -1, 64),
	}
	if err := w.Write(line); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

// Records returns a copy of the history in append order.
func (t *Tracker) Records() []model.ForecastRecord {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]model.ForecastRecord, len(t.records))
	copy(out, t.records)
	return out
}
