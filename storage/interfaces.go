package storage

import "phone-stats/models"

// RawPhoneReader is the interface for loading unprocessed rows from a source.
type RawPhoneReader interface {
	ReadRaw() ([]*models.RawPhone, error)
}

// PhoneStore holds the normalized records the statistics are computed from.
type PhoneStore interface {
	Write(phones []*models.Phone) error
	FetchAll() ([]*models.Phone, error)
}
