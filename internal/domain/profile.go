package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Profile is the decoded random-user payload cached under the "user" key
type Profile struct {
	Results []ProfileResult `json:"results"`
	Info    ProfileInfo     `json:"info"`
}

// ProfileResult is a single mock user
type ProfileResult struct {
	Gender  string         `json:"gender"`
	Name    ProfileName    `json:"name"`
	Email   string         `json:"email"`
	Login   ProfileLogin   `json:"login"`
	Picture ProfilePicture `json:"picture"`
	Phone   string         `json:"phone"`
	Cell    string         `json:"cell"`
	Nat     string         `json:"nat"`
}

// ProfileName holds the user's name parts
type ProfileName struct {
	Title string `json:"title"`
	First string `json:"first"`
	Last  string `json:"last"`
}

// ProfileLogin holds login data; UUID becomes the session token
type ProfileLogin struct {
	UUID     string `json:"uuid"`
	Username string `json:"username"`
}

// ProfilePicture holds avatar URLs
type ProfilePicture struct {
	Large     string `json:"large"`
	Medium    string `json:"medium"`
	Thumbnail string `json:"thumbnail"`
}

// ProfileInfo holds response metadata
type ProfileInfo struct {
	Seed    string `json:"seed"`
	Results int    `json:"results"`
	Page    int    `json:"page"`
	Version string `json:"version"`
}

// ParseProfile decodes a cached or fetched profile blob
func ParseProfile(data []byte) (*Profile, error) {
	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to decode profile: %w", err)
	}
	return &p, nil
}

// Primary returns the first result, or a zero value if there is none
func (p Profile) Primary() ProfileResult {
	if len(p.Results) == 0 {
		return ProfileResult{}
	}
	return p.Results[0]
}

// FullName joins title, first and last name, skipping empty parts
func (r ProfileResult) FullName() string {
	parts := make([]string, 0, 3)
	for _, s := range []string{r.Name.Title, r.Name.First, r.Name.Last} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

// GenderIcon returns the emoji shown next to the name
func (r ProfileResult) GenderIcon() string {
	if r.Gender == "male" {
		return "🧑"
	}
	return "👩"
}

// GenderLabel returns the localized gender name
func (r ProfileResult) GenderLabel() string {
	if r.Gender == "male" {
		return "مرد"
	}
	return "زن"
}
