// Package demo serves the small sample endpoints shipped with the service:
// a calculator, an adult check, a read-only user directory and a feedback box.
package demo

import (
	"fmt"
	"sync"
)

// AdultAge is the age from which a person counts as an adult
const AdultAge = 18

// DefaultListLimit is used by the directory listing when no limit is given
const DefaultListLimit = 10

var directory = []DirectoryEntry{
	{Username: "john_doe", Email: "john@example.com"},
	{Username: "jane_smith", Email: "jane@example.com"},
	{Username: "alice", Email: "alice@example.com"},
	{Username: "bob", Email: "bob@example.com"},
	{Username: "emily", Email: "emily@example.com"},
	{Username: "alex", Email: "alex@example.com"},
	{Username: "sophia", Email: "sophia@example.com"},
	{Username: "michael", Email: "michael@example.com"},
	{Username: "olivia", Email: "olivia@example.com"},
	{Username: "william", Email: "william@example.com"},
}

var sampleProfile = Profile{ID: 1, Name: "John Doe"}

type Service struct {
	mu       sync.Mutex
	feedback []Feedback
}

func NewService() *Service {
	return &Service{}
}

// SampleProfile returns the built-in sample user
func (s *Service) SampleProfile() Profile {
	return sampleProfile
}

func (s *Service) Sum(a, b int) int {
	return a + b
}

func (s *Service) CheckAdult(name string, age int) PersonResponse {
	return PersonResponse{Name: name, Age: age, IsAdult: age >= AdultAge}
}

// Lookup returns the directory entry with the 1-based id
func (s *Service) Lookup(id int) (DirectoryEntry, bool) {
	if id < 1 || id > len(directory) {
		return DirectoryEntry{}, false
	}
	return directory[id-1], true
}

// List returns the first limit entries keyed by id. A negative limit yields nothing.
func (s *Service) List(limit int) map[int]DirectoryEntry {
	if limit < 0 {
		limit = 0
	}
	if limit > len(directory) {
		limit = len(directory)
	}

	out := make(map[int]DirectoryEntry, limit)
	for i := 0; i < limit; i++ {
		out[i+1] = directory[i]
	}
	return out
}

// SubmitFeedback stores the feedback and returns the acknowledgement text
func (s *Service) SubmitFeedback(fb Feedback) string {
	s.mu.Lock()
	s.feedback = append(s.feedback, fb)
	s.mu.Unlock()

	return fmt.Sprintf("Feedback received. Thank you, %s!", fb.Name)
}

// Feedback returns a copy of everything received so far
func (s *Service) Feedback() []Feedback {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Feedback, len(s.feedback))
	copy(out, s.feedback)
	return out
}
