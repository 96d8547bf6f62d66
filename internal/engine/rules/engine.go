// Package rules implements the stateful signature engine: sliding-window
// counters keyed by source address plus immediate payload pattern
// matching. It runs beside the classifier and catches attacks whose
// signal is spread across many flows.
package rules

import (
	"fmt"
	"net"
	"sync"
	"time"

	"NetSentry/internal/config"
	"NetSentry/internal/metrics"
	"NetSentry/internal/model"
)

// Labels assigned by the signature detectors.
const (
	LabelSSHBruteForce       = "SSH-Brute-Force"
	LabelBruteForce          = "Brute-Force"
	LabelPrivilegeEscalation = "Privilege-Escalation"
	LabelPortScan            = "PortScan"
	LabelSlowConn            = "Slowloris-DoS"
	LabelSQLInjection        = "SQL-Injection"
	LabelXSS                 = "XSS-Attack"
	LabelCommandInjection    = "Command-Injection"
)

// EventType identifies a host-reported security event.
type EventType string

const (
	EventAuthFailure         EventType = "auth_failure"
	EventPrivilegeEscalation EventType = "privilege_escalation"
)

// Event is a host-side observation fed into the windowed detectors
// alongside the packet stream.
type Event struct {
	Timestamp time.Time
	SrcIP     net.IP
	DstIP     net.IP
	DstPort   uint16
	Type      EventType
}

const protoTCP = 6

// Ports whose connection attempts count as authentication attempts.
var authPorts = map[uint16]bool{
	21:   true, // ftp
	22:   true, // ssh
	23:   true, // telnet
	3389: true, // rdp
	5900: true, // vnc
}

// A connection is low-throughput once it has been open for at least
// slowConnMinAge while carrying at most slowConnMaxBytes of payload.
const (
	slowConnMinAge   = 1 * time.Second
	slowConnMaxBytes = 1024
)

type connState struct {
	opened  time.Time
	bytes   uint64
	dstIP   net.IP
	dstPort uint16
}

// sourceState holds the windowed observations for one source address.
// All times are pruned against their detector's window on access.
type sourceState struct {
	auth     []time.Time
	privEsc  []time.Time
	ports    map[uint16]time.Time
	conns    map[string]*connState
	lastSeen time.Time
}

// Engine is the signature rule engine. All state is behind one mutex;
// the packet workers call ObservePacket concurrently and candidates are
// returned to the caller rather than dispatched from under the lock.
type Engine struct {
	mu      sync.Mutex
	sources map[string]*sourceState

	bruteWindow    time.Duration
	bruteThreshold int

	privEscWindow    time.Duration
	privEscThreshold int

	portScanWindow    time.Duration
	portScanThreshold int

	slowConnWindow    time.Duration
	slowConnThreshold int

	payloadInspection bool
}

// New builds a rule engine from the configured windows and thresholds.
func New(cfg *config.RulesConfig) (*Engine, error) {
	e := &Engine{
		sources:           make(map[string]*sourceState),
		bruteThreshold:    cfg.BruteForce.Threshold,
		privEscThreshold:  cfg.PrivilegeEscalation.Threshold,
		portScanThreshold: cfg.PortScan.Threshold,
		slowConnThreshold: cfg.SlowConn.Threshold,
		payloadInspection: cfg.PayloadInspection,
	}

	var err error
	if e.bruteWindow, err = time.ParseDuration(cfg.BruteForce.Window); err != nil {
		return nil, fmt.Errorf("invalid brute_force window: %w", err)
	}
	if e.privEscWindow, err = time.ParseDuration(cfg.PrivilegeEscalation.Window); err != nil {
		return nil, fmt.Errorf("invalid privilege_escalation window: %w", err)
	}
	if e.portScanWindow, err = time.ParseDuration(cfg.PortScan.Window); err != nil {
		return nil, fmt.Errorf("invalid port_scan window: %w", err)
	}
	if e.slowConnWindow, err = time.ParseDuration(cfg.SlowConn.Window); err != nil {
		return nil, fmt.Errorf("invalid slow_conn window: %w", err)
	}
	return e, nil
}

func (e *Engine) source(ip string) *sourceState {
	st, ok := e.sources[ip]
	if !ok {
		st = &sourceState{
			ports: make(map[uint16]time.Time),
			conns: make(map[string]*connState),
		}
		e.sources[ip] = st
	}
	return st
}

// ObservePacket feeds one packet into every detector and returns the
// rule candidates it triggered, possibly none. The detectors are
// level-triggered: they keep firing while a window stays over threshold,
// and the dispatcher's cooldown collapses the repeats.
func (e *Engine) ObservePacket(pkt *model.PacketInfo) []model.RuleCandidate {
	e.mu.Lock()
	defer e.mu.Unlock()

	ts := pkt.Timestamp
	tuple := pkt.FiveTuple
	st := e.source(tuple.SrcIP.String())
	st.lastSeen = ts

	var out []model.RuleCandidate

	isTCP := tuple.Protocol == protoTCP
	synOnly := isTCP &&
		pkt.TCPFlags&model.FlagSYN != 0 &&
		pkt.TCPFlags&model.FlagACK == 0

	if synOnly {
		// Port scan: distinct destination ports contacted within the window.
		st.ports[tuple.DstPort] = ts
		cutoff := ts.Add(-e.portScanWindow)
		for port, seen := range st.ports {
			if seen.Before(cutoff) {
				delete(st.ports, port)
			}
		}
		if len(st.ports) >= e.portScanThreshold {
			out = append(out, e.fire("port_scan", model.RuleCandidate{
				Timestamp: ts,
				SrcIP:     tuple.SrcIP,
				DstIP:     tuple.DstIP,
				DstPort:   tuple.DstPort,
				Label:     LabelPortScan,
				Packets:   uint64(len(st.ports)),
			}))
		}

		// Connection attempts against auth services count as attempts.
		if authPorts[tuple.DstPort] {
			st.auth = pruneTimes(append(st.auth, ts), ts.Add(-e.bruteWindow))
			if len(st.auth) >= e.bruteThreshold {
				label := LabelBruteForce
				if tuple.DstPort == 22 {
					label = LabelSSHBruteForce
				}
				out = append(out, e.fire("brute_force", model.RuleCandidate{
					Timestamp: ts,
					SrcIP:     tuple.SrcIP,
					DstIP:     tuple.DstIP,
					DstPort:   tuple.DstPort,
					Label:     label,
					Packets:   uint64(len(st.auth)),
				}))
			}
		}

		st.conns[connKey(tuple)] = &connState{
			opened:  ts,
			dstIP:   tuple.DstIP,
			dstPort: tuple.DstPort,
		}
	}

	if isTCP {
		key := connKey(tuple)
		if c, ok := st.conns[key]; ok {
			c.bytes += uint64(len(pkt.Payload))
			if pkt.TCPFlags&(model.FlagFIN|model.FlagRST) != 0 {
				delete(st.conns, key)
			}
		}

		// Slowloris: many concurrently open connections that trickle bytes.
		slow := 0
		var target *connState
		for key, c := range st.conns {
			age := ts.Sub(c.opened)
			if age > e.slowConnWindow {
				delete(st.conns, key)
				continue
			}
			if age >= slowConnMinAge && c.bytes <= slowConnMaxBytes {
				slow++
				target = c
			}
		}
		if slow >= e.slowConnThreshold && target != nil {
			out = append(out, e.fire("slow_conn", model.RuleCandidate{
				Timestamp: ts,
				SrcIP:     tuple.SrcIP,
				DstIP:     target.dstIP,
				DstPort:   target.dstPort,
				Label:     LabelSlowConn,
				Packets:   uint64(slow),
			}))
		}
	}

	if e.payloadInspection {
		if label := matchPayload(pkt.Payload); label != "" {
			out = append(out, e.fire("payload_pattern", model.RuleCandidate{
				Timestamp: ts,
				SrcIP:     tuple.SrcIP,
				DstIP:     tuple.DstIP,
				DstPort:   tuple.DstPort,
				Label:     label,
				Packets:   1,
				Bytes:     uint64(len(pkt.Payload)),
			}))
		}
	}

	return out
}

// ObserveEvent feeds one host-reported event into the windowed detectors
// and returns any triggered candidates.
func (e *Engine) ObserveEvent(ev Event) []model.RuleCandidate {
	e.mu.Lock()
	defer e.mu.Unlock()

	st := e.source(ev.SrcIP.String())
	st.lastSeen = ev.Timestamp

	var out []model.RuleCandidate

	switch ev.Type {
	case EventAuthFailure:
		st.auth = pruneTimes(append(st.auth, ev.Timestamp), ev.Timestamp.Add(-e.bruteWindow))
		if len(st.auth) >= e.bruteThreshold {
			out = append(out, e.fire("brute_force", model.RuleCandidate{
				Timestamp: ev.Timestamp,
				SrcIP:     ev.SrcIP,
				DstIP:     ev.DstIP,
				DstPort:   ev.DstPort,
				Label:     LabelSSHBruteForce,
				Packets:   uint64(len(st.auth)),
			}))
		}
	case EventPrivilegeEscalation:
		st.privEsc = pruneTimes(append(st.privEsc, ev.Timestamp), ev.Timestamp.Add(-e.privEscWindow))
		if len(st.privEsc) >= e.privEscThreshold {
			out = append(out, e.fire("privilege_escalation", model.RuleCandidate{
				Timestamp: ev.Timestamp,
				SrcIP:     ev.SrcIP,
				DstIP:     ev.DstIP,
				DstPort:   ev.DstPort,
				Label:     LabelPrivilegeEscalation,
				Packets:   uint64(len(st.privEsc)),
			}))
		}
	}

	return out
}

// Reclaim drops sources whose every window has gone quiet. Intended to
// run on a timer; per-packet pruning already bounds the live sources.
func (e *Engine) Reclaim(now time.Time) int {
	e.mu.Lock()
	defer e.mu.Unlock()

	idle := e.maxWindow()
	removed := 0
	for ip, st := range e.sources {
		if now.Sub(st.lastSeen) > idle {
			delete(e.sources, ip)
			removed++
		}
	}
	return removed
}

// Sources returns the number of tracked source addresses.
func (e *Engine) Sources() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.sources)
}

func (e *Engine) maxWindow() time.Duration {
	max := e.bruteWindow
	for _, w := range []time.Duration{e.privEscWindow, e.portScanWindow, e.slowConnWindow} {
		if w > max {
			max = w
		}
	}
	return max
}

func (e *Engine) fire(rule string, c model.RuleCandidate) model.RuleCandidate {
	metrics.RuleFirings.WithLabelValues(rule).Inc()
	return c
}

// pruneTimes drops timestamps at or before the cutoff, keeping order.
func pruneTimes(ts []time.Time, cutoff time.Time) []time.Time {
	i := 0
	for i < len(ts) && !ts[i].After(cutoff) {
		i++
	}
	return ts[i:]
}

func connKey(t model.FiveTuple) string {
	return fmt.Sprintf("%s:%d->%s:%d", t.SrcIP, t.SrcPort, t.DstIP, t.DstPort)
}
