// Copyright 2025 The LUCI Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package gapi

// Wire codecs for the scalar kinds the discovery format represents as
// strings: durations ("3.5s"), timestamps (RFC 3339) and bytes (std base64).

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.chromium.org/luci/common/errors"
)

// FormatDuration renders d in the wire form: decimal seconds with an "s"
// suffix and no trailing zeros, e.g. "3s", "3.5s", "0.000000001s".
func FormatDuration(d time.Duration) string {
	neg := ""
	if d < 0 {
		neg = "-"
		d = -d
	}
	secs := d / time.Second
	nanos := d % time.Second
	if nanos == 0 {
		return fmt.Sprintf("%s%ds", neg, secs)
	}
	frac := strings.TrimRight(fmt.Sprintf("%09d", nanos), "0")
	return fmt.Sprintf("%s%d.%ss", neg, secs, frac)
}

// ParseDuration parses the wire duration form: a decimal number of seconds
// followed by "s". Unlike time.ParseDuration, other units are rejected.
func ParseDuration(s string) (time.Duration, error) {
	body, ok := strings.CutSuffix(s, "s")
	if !ok || body == "" {
		return 0, errors.Reason("duration %q: want decimal seconds with an \"s\" suffix", s).Err()
	}
	neg := false
	if strings.HasPrefix(body, "-") {
		neg = true
		body = body[1:]
	}
	intPart, fracPart, _ := strings.Cut(body, ".")
	if intPart == "" || len(fracPart) > 9 {
		return 0, errors.Reason("duration %q: bad numeric form", s).Err()
	}
	secs, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, errors.Annotate(err, "duration %q", s).Err()
	}
	var nanos int64
	if fracPart != "" {
		// Right-pad to nanosecond precision.
		nanos, err = strconv.ParseInt(fracPart+strings.Repeat("0", 9-len(fracPart)), 10, 64)
		if err != nil {
			return 0, errors.Annotate(err, "duration %q", s).Err()
		}
	}
	d := time.Duration(secs)*time.Second + time.Duration(nanos)
	if neg {
		d = -d
	}
	return d, nil
}

// FormatTime renders t as an RFC 3339 UTC timestamp with nanosecond
// precision when present.
func FormatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// ParseTime parses an RFC 3339 timestamp, with or without fractional
// seconds.
func ParseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, errors.Annotate(err, "timestamp %q", s).Err()
	}
	return t, nil
}

// EncodeBytes renders binary data in the wire form (standard base64).
func EncodeBytes(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

// DecodeBytes parses standard base64, also tolerating the URL-safe alphabet
// some services emit.
func DecodeBytes(s string) ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err == nil {
		return b, nil
	}
	if b, uerr := base64.URLEncoding.DecodeString(s); uerr == nil {
		return b, nil
	}
	return nil, errors.Annotate(err, "bytes field").Err()
}
