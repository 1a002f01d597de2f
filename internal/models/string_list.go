// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList is an ordered list of labels (sizes, colors) stored as a
// JSONB array column. It implements sql.Scanner and driver.Valuer so
// it can be read and written through database/sql directly.
type StringList []string

// Scan implements sql.Scanner. NULL scans as an empty list.
func (l *StringList) Scan(src any) error {
	if src == nil {
		*l = nil
		return nil
	}
	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("string list: unsupported scan type %T", src)
	}
	return json.Unmarshal(data, (*[]string)(l))
}

// Value implements driver.Valuer. A nil list is written as an empty
// JSON array, never SQL NULL, so the column stays non-null.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(l))
}
