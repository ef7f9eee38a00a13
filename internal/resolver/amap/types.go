package amap

import (
	"encoding/json"
	"fmt"
	"strings"
)

// flexString decodes fields that the API returns as a string when set and
// as an empty array when not.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = flexString(s)
		return nil
	}
	var parts []string
	if err := json.Unmarshal(data, &parts); err == nil {
		*f = flexString(strings.Join(parts, ""))
		return nil
	}
	*f = ""
	return nil
}

type envelope struct {
	Status   string     `json:"status"`
	Info     string     `json:"info"`
	InfoCode string     `json:"infocode"`
	Count    flexString `json:"count"`
}

func (e envelope) check() error {
	if e.Status != "1" {
		return fmt.Errorf("amap returned status %q: %s (infocode %s)", e.Status, e.Info, e.InfoCode)
	}
	return nil
}

type placeResponse struct {
	envelope
	Pois []poi `json:"pois"`
}

type poi struct {
	Name     flexString `json:"name"`
	Province flexString `json:"pname"`
	City     flexString `json:"cityname"`
	District flexString `json:"adname"`
	Address  flexString `json:"address"`
}

// fullAddress concatenates province, city and district with the street
// address, or with the place name when no street address is set. Components
// are kept as returned, so municipalities carry their name twice.
func (p poi) fullAddress() string {
	tail := strings.TrimSpace(string(p.Address))
	if tail == "" {
		tail = strings.TrimSpace(string(p.Name))
	}

	var b strings.Builder
	for _, part := range []string{string(p.Province), string(p.City), string(p.District), tail} {
		b.WriteString(strings.TrimSpace(part))
	}
	return b.String()
}

type tipsResponse struct {
	envelope
	Tips []tip `json:"tips"`
}

type tip struct {
	Name     flexString `json:"name"`
	District flexString `json:"district"`
	Address  flexString `json:"address"`
}
