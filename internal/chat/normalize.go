package chat

import "time"

// timeLayout interprets the export's date day-first. Fixed policy; the
// format matches both padded and unpadded day/month digits.
const timeLayout = "2/1/2006 15:04"

// Normalize combines each message's date and clock text into a single
// timestamp and derives the hour-of-day and minute-bucket keys. Records
// whose text does not form a valid calendar moment are retained with
// Valid=false. Order preserving and idempotent.
func Normalize(msgs []Message) []Record {
	records := make([]Record, 0, len(msgs))
	for _, m := range msgs {
		rec := Record{Message: m}
		if ts, err := time.Parse(timeLayout, m.Date+" "+m.Clock); err == nil {
			rec.Timestamp = ts
			rec.Valid = true
			rec.Hour = ts.Hour()
			rec.MinuteBucket = ts.Truncate(time.Minute)
		}
		records = append(records, rec)
	}
	return records
}
