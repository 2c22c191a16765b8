package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// =============================================================================
// AUDIT EVENT TYPES
// =============================================================================

// AuditEventType defines the type of audit event
type AuditEventType string

const (
	AuditGenerateOK     AuditEventType = "generate_ok"
	AuditGenerateReject AuditEventType = "generate_reject" // bad user input
	AuditGenerateError  AuditEventType = "generate_error"  // synthesis or internal failure

	AuditServerStart AuditEventType = "server_start"
	AuditServerStop  AuditEventType = "server_stop"

	AuditConfigReload AuditEventType = "config_reload"
)

// AuditEvent is one JSON line in the audit log.
type AuditEvent struct {
	Timestamp  int64          `json:"ts"` // Unix milliseconds
	EventType  AuditEventType `json:"event"`
	RequestID  string         `json:"req,omitempty"`
	Source     string         `json:"source,omitempty"` // cli, api, tui
	Command    string         `json:"command,omitempty"`
	Kind       string         `json:"kind,omitempty"`
	Success    bool           `json:"success"`
	DurationMs int64          `json:"dur_ms"`
	Error      string         `json:"error,omitempty"`
	Message    string         `json:"msg,omitempty"`
}

// =============================================================================
// AUDIT LOGGER
// =============================================================================

var (
	auditOut io.Writer
	auditCl  io.Closer
	auditMu  sync.Mutex
)

// AuditLogger writes audit events scoped to a source and request.
type AuditLogger struct {
	source    string
	requestID string
}

// InitAudit opens <dir>/<date>_audit.log. It is a no-op outside debug mode or
// without a logs directory.
func InitAudit() error {
	if !IsDebugMode() {
		return nil
	}

	optsMu.RLock()
	dir := opts.Directory
	optsMu.RUnlock()
	if dir == "" {
		return nil
	}

	auditMu.Lock()
	defer auditMu.Unlock()

	if auditOut != nil {
		return nil
	}

	date := time.Now().Format("2006-01-02")
	auditPath := filepath.Join(dir, fmt.Sprintf("%s_audit.log", date))
	file, err := os.OpenFile(auditPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to create audit log: %w", err)
	}
	auditOut, auditCl = file, file
	return nil
}

// CloseAudit closes the audit log file
func CloseAudit() {
	auditMu.Lock()
	defer auditMu.Unlock()

	if auditCl != nil {
		auditCl.Close()
	}
	auditOut, auditCl = nil, nil
}

// Audit returns an unscoped audit logger.
func Audit() *AuditLogger {
	return &AuditLogger{}
}

// AuditFor returns an audit logger that stamps source and request ID.
func AuditFor(source, requestID string) *AuditLogger {
	return &AuditLogger{source: source, requestID: requestID}
}

// Log writes an audit event
func (a *AuditLogger) Log(event AuditEvent) {
	auditMu.Lock()
	defer auditMu.Unlock()

	if auditOut == nil {
		return
	}

	if event.Timestamp == 0 {
		event.Timestamp = time.Now().UnixMilli()
	}
	if event.Source == "" {
		event.Source = a.source
	}
	if event.RequestID == "" {
		event.RequestID = a.requestID
	}

	data, err := json.Marshal(event)
	if err != nil {
		return
	}
	_, _ = auditOut.Write(append(data, '\n'))
}

// Generation records the outcome of one command. rejected marks input errors
// so they can be told apart from synthesis failures.
func (a *AuditLogger) Generation(command, kind string, elapsed time.Duration, err error, rejected bool) {
	event := AuditEvent{
		EventType:  AuditGenerateOK,
		Command:    command,
		Kind:       kind,
		Success:    err == nil,
		DurationMs: elapsed.Milliseconds(),
	}
	if err != nil {
		event.Error = err.Error()
		event.EventType = AuditGenerateError
		if rejected {
			event.EventType = AuditGenerateReject
		}
	}
	a.Log(event)
}

// ServerStart logs the HTTP server binding its address
func (a *AuditLogger) ServerStart(addr string) {
	a.Log(AuditEvent{
		EventType: AuditServerStart,
		Success:   true,
		Message:   fmt.Sprintf("listening on %s", addr),
	})
}

// ServerStop logs server shutdown
func (a *AuditLogger) ServerStop(err error) {
	event := AuditEvent{EventType: AuditServerStop, Success: err == nil}
	if err != nil {
		event.Error = err.Error()
	}
	a.Log(event)
}

// ConfigReload logs a hot config reload
func (a *AuditLogger) ConfigReload(path string, err error) {
	event := AuditEvent{
		EventType: AuditConfigReload,
		Success:   err == nil,
		Message:   path,
	}
	if err != nil {
		event.Error = err.Error()
	}
	a.Log(event)
}
