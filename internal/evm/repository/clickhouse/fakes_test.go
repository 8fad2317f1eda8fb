package clickhouse

import (
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
)

type fakeRow struct {
	scan func(dest ...any) error
}

func (r fakeRow) Err() error                { return nil }
func (r fakeRow) Scan(dest ...any) error    { return r.scan(dest...) }
func (r fakeRow) ScanStruct(dest any) error { return r.scan(dest) }

// fakeBatch records appended rows. Methods it does not override panic through the nil embedded interface.
type fakeBatch struct {
	driver.Batch
	rows      [][]any
	appendErr error
	sendErr   error
	sent      bool
	aborted   bool
}

func (b *fakeBatch) Append(v ...any) error {
	if b.appendErr != nil {
		return b.appendErr
	}
	b.rows = append(b.rows, v)
	return nil
}

func (b *fakeBatch) Send() error {
	b.sent = true
	return b.sendErr
}

func (b *fakeBatch) Abort() error {
	b.aborted = true
	return nil
}
