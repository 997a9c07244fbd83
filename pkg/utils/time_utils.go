package utils

import "time"

// Midtrans reports timestamps in Western Indonesia Time (+07:00)
var wibLoc = func() *time.Location {
	if loc, err := time.LoadLocation("Asia/Jakarta"); err == nil {
		return loc
	}
	return time.FixedZone("WIB", 7*3600)
}()

const gatewayTimeLayout = "2006-01-02 15:04:05"

func NowUnixSeconds() int64 { return time.Now().Unix() }

// ParseGatewayTime converts the gateway's "2006-01-02 15:04:05" timestamp to
// a time.Time. Returns zero time when the value is empty or malformed so
// callers can pick their own fallback.
func ParseGatewayTime(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	t, err := time.ParseInLocation(gatewayTimeLayout, value, wibLoc)
	if err != nil {
		return time.Time{}
	}
	return t
}

func FromUnixSecondsWIB(t int64) time.Time {
	if t <= 0 {
		return time.Time{}
	}
	return time.Unix(t, 0).In(wibLoc)
}
