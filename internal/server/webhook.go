package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"unicode"
)

// inboundPayload is the subset of a WhatsApp Cloud API webhook we read.
type inboundPayload struct {
	Object string `json:"object"`
	Entry  []struct {
		Changes []struct {
			Value struct {
				Messages []inboundMessage `json:"messages"`
			} `json:"value"`
		} `json:"changes"`
	} `json:"entry"`
}

type inboundMessage struct {
	From string `json:"from"`
	Type string `json:"type"`
	Text struct {
		Body string `json:"body"`
	} `json:"text"`
}

func (p inboundPayload) textMessages() []inboundMessage {
	var out []inboundMessage
	for _, entry := range p.Entry {
		for _, change := range entry.Changes {
			for _, msg := range change.Value.Messages {
				if msg.Type == "text" && strings.TrimSpace(msg.Text.Body) != "" {
					out = append(out, msg)
				}
			}
		}
	}
	return out
}

// HandleWebhook serves the WhatsApp webhook: GET answers the subscription
// challenge, POST answers inbound text from the owner with the menu.
func (s *Server) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.verifyWebhook(w, r)
	case http.MethodPost:
		s.receiveWebhook(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Server) verifyWebhook(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if s.verifyToken == "" || q.Get("hub.mode") != "subscribe" || q.Get("hub.verify_token") != s.verifyToken {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}
	w.Header().Set("Content-Type", "text/plain")
	_, _ = w.Write([]byte(q.Get("hub.challenge")))
}

func (s *Server) receiveWebhook(w http.ResponseWriter, r *http.Request) {
	var payload inboundPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid payload", http.StatusBadRequest)
		return
	}

	var accepted []inboundMessage
	for _, msg := range payload.textMessages() {
		if s.owner == "" || digits(msg.From) != s.owner {
			s.log.Warn("Ignoring message from unknown number", map[string]interface{}{"from": msg.From})
			continue
		}
		accepted = append(accepted, msg)
	}

	// The Cloud API redelivers anything not acknowledged quickly, so the
	// 200 goes out before the menu fetches data.
	w.WriteHeader(http.StatusOK)
	if len(accepted) == 0 {
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(r.Context()), s.replyTimeout)
	s.replies.Add(1)
	go func() {
		defer s.replies.Done()
		defer cancel()
		for _, msg := range accepted {
			s.answer(ctx, msg)
		}
	}()
}

func (s *Server) answer(ctx context.Context, msg inboundMessage) {
	reply := s.menu.Handle(ctx, msg.Text.Body)
	if s.replier == nil {
		s.log.Info("No replier configured, dropping reply", map[string]interface{}{"command": msg.Text.Body})
		return
	}
	if err := s.replier.SendTo(ctx, msg.From, reply); err != nil {
		s.log.Error("Failed to reply", err, map[string]interface{}{"command": msg.Text.Body})
	}
}

// WaitReplies blocks until webhook answers still in flight are sent.
func (s *Server) WaitReplies() {
	s.replies.Wait()
}

// digits keeps only the digits of a phone number.
func digits(phone string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, phone)
}
