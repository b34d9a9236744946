package service

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"reflect"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/lexigraph/spellkit/pkg/spellchecker"
)

// defaultMaxSuggestions is used when a suggest request omits max or
// sets it to zero.
const defaultMaxSuggestions = 10

// Service processes one msgpack request at a time off stdin, matching
// spec §5's single-threaded cooperative model: no request starts until
// the previous one's check/suggest path has fully completed.
type Service struct {
	checker      *spellchecker.Spellchecker
	decoder      *msgpack.Decoder
	writeMutex   sync.Mutex
	requestCount int64
}

// NewService builds a Service around an already-loaded spellchecker.
func NewService(checker *spellchecker.Spellchecker) *Service {
	return &Service{
		checker: checker,
		decoder: msgpack.NewDecoder(os.Stdin),
	}
}

// Start runs the request loop until stdin closes.
func (s *Service) Start() error {
	log.Debug("starting msgpack spellcheck service")
	for {
		if err := s.processRequest(); err != nil {
			if err == io.EOF {
				log.Debug("client disconnected")
				return nil
			}
			log.Errorf("request error: %v", err)
			continue
		}
	}
}

// processRequest decodes a single request and dispatches it by its "op"
// field, direct-accessing the raw map the way the teacher's
// processCompletionRequest avoids a second marshal/unmarshal round trip.
func (s *Service) processRequest() error {
	s.requestCount++

	var raw map[string]interface{}
	if err := s.decoder.Decode(&raw); err != nil {
		if err != io.EOF {
			if sendErr := s.sendError(fmt.Sprintf("failed to decode request: %v", err)); sendErr != nil {
				return sendErr
			}
		}
		return err
	}

	op, _ := raw["op"].(string)
	switch op {
	case "check":
		text, _ := raw["text"].(string)
		return s.handleCheck(text)
	case "suggest":
		word, _ := raw["word"].(string)
		max := defaultMaxSuggestions
		switch m := raw["max"].(type) {
		case int, int8, int16, int32, int64:
			if v := reflect.ValueOf(m).Int(); v > 0 {
				max = int(v)
			}
		case uint, uint8, uint16, uint32, uint64:
			if v := reflect.ValueOf(m).Uint(); v > 0 {
				max = int(v)
			}
		case float64:
			if m > 0 {
				max = int(m)
			}
		}
		return s.handleSuggest(word, max)
	default:
		return s.sendError(fmt.Sprintf("unrecognized op: %q", op))
	}
}

func (s *Service) handleCheck(text string) error {
	result := s.checker.Check(text)
	errs := make([]WordErrorResponse, len(result.Errors))
	for i, e := range result.Errors {
		suggestions := e.Suggestions
		if suggestions == nil {
			suggestions = []string{}
		}
		errs[i] = WordErrorResponse{Word: e.Word, Position: e.Position, Suggestions: suggestions}
	}
	return s.sendResponse(&CheckResponse{
		Success:   result.Success,
		Errors:    errs,
		WordCount: result.WordCount,
	})
}

func (s *Service) handleSuggest(word string, max int) error {
	suggestions := s.checker.Suggest(word)
	if len(suggestions) > max {
		suggestions = suggestions[:max]
	}
	return s.sendResponse(&SuggestResponse{Suggestions: suggestions})
}

// sendResponse encodes response to a buffer and writes it to stdout in
// one atomic write, serialized by writeMutex.
func (s *Service) sendResponse(response any) error {
	s.writeMutex.Lock()
	defer s.writeMutex.Unlock()

	var buf bytes.Buffer
	encoder := msgpack.NewEncoder(&buf)
	if err := encoder.Encode(response); err != nil {
		return fmt.Errorf("failed to encode response: %w", err)
	}
	if _, err := os.Stdout.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write response: %w", err)
	}
	return os.Stdout.Sync()
}

func (s *Service) sendError(message string) error {
	return s.sendResponse(&ErrorResponse{Error: message})
}
