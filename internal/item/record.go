package item

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/meheralimeer/shelfwatch/internal/common"
)

// Text layouts used by the record codec. Timestamps are local ISO-8601
// without a zone offset; the expiry field carries the date only.
const (
	TimeLayout = "2006-01-02T15:04:05"
	DateLayout = time.DateOnly
)

const recordFields = 5

// MarshalRecord renders one item as a single record line, fields joined by
// commas in the fixed order id,name,createdAt,updatedAt,expiryDate.
//
// Known limitation: a Name containing a comma corrupts the record on reload
// (the field count no longer matches). The format is kept as-is for
// compatibility with existing data files; no escaping is performed.
func MarshalRecord(it Item) string {
	return fmt.Sprintf("%d,%s,%s,%s,%s",
		it.ID,
		it.Name,
		it.CreatedAt.Format(TimeLayout),
		it.UpdatedAt.Format(TimeLayout),
		it.ExpiryDate.Format(DateLayout),
	)
}

// ParseRecord parses one record line. A line that does not split into
// exactly five fields of the expected types fails with an error matching
// common.ErrMalformedRecord.
func ParseRecord(line string) (Item, error) {
	var zero Item

	parts := strings.Split(line, ",")
	if len(parts) != recordFields {
		return zero, fmt.Errorf("%w: expected %d fields, got %d", common.ErrMalformedRecord, recordFields, len(parts))
	}

	id, err := strconv.Atoi(parts[0])
	if err != nil {
		return zero, fmt.Errorf("%w: bad id %q: %v", common.ErrMalformedRecord, parts[0], err)
	}

	createdAt, err := time.ParseInLocation(TimeLayout, parts[2], time.Local)
	if err != nil {
		return zero, fmt.Errorf("%w: bad creation timestamp %q: %v", common.ErrMalformedRecord, parts[2], err)
	}

	updatedAt, err := time.ParseInLocation(TimeLayout, parts[3], time.Local)
	if err != nil {
		return zero, fmt.Errorf("%w: bad update timestamp %q: %v", common.ErrMalformedRecord, parts[3], err)
	}

	expiryDate, err := time.ParseInLocation(DateLayout, parts[4], time.Local)
	if err != nil {
		return zero, fmt.Errorf("%w: bad expiry date %q: %v", common.ErrMalformedRecord, parts[4], err)
	}

	return Item{
		ID:         id,
		Name:       parts[1],
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
		ExpiryDate: expiryDate,
	}, nil
}
