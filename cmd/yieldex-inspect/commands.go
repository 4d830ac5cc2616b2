package main

import (
	"bufio"
	"bytes"
	"crypto/ed25519"
	"encoding/base64"
	"encoding/hex"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/yieldex-labs/yieldex-go/pkg/solana"
	"github.com/yieldex-labs/yieldex-go/pkg/solana/yieldex"
)

type session struct {
	config    Config
	programID ed25519.PublicKey
	stdin     io.Reader
	stdout    io.Writer
	log       *logrus.Entry
}

type command struct {
	usage   string
	minArgs int
	run     func(s *session, args []string) error
}

var commands = map[string]command{
	"instruction": {usage: "<data|->  decode instruction data", minArgs: 1, run: runInstruction},
	"account":     {usage: "<data|->  decode account data", minArgs: 1, run: runAccount},
	"event":       {usage: "<data|->  decode an event or event instruction payload", minArgs: 1, run: runEvent},
	"logs":        {usage: "[file|-]  decode events in program log lines", run: runLogs},
	"indexes":     {usage: "<instruction> <indexes|->  name a compiled account index array", minArgs: 2, run: runIndexes},
	"tx":          {usage: "<data|->  decompile the program's instructions in a transaction or message", minArgs: 1, run: runTransaction},
	"catalog":     {usage: "list instructions, account kinds and events", run: runCatalog},
}

// input decodes a positional argument, or stdin when it is "-".
func (s *session) input(arg string) ([]byte, error) {
	text := arg
	if arg == "-" {
		raw, err := io.ReadAll(s.stdin)
		if err != nil {
			return nil, errors.Wrap(err, "failed to read stdin")
		}
		text = string(raw)
	}
	text = strings.TrimSpace(text)

	var (
		data []byte
		err  error
	)
	switch s.config.Encoding {
	case encodingBase64:
		data, err = base64.StdEncoding.DecodeString(text)
	case encodingBase58:
		data, err = base58.Decode(text)
	default:
		data, err = hex.DecodeString(strings.TrimPrefix(text, "0x"))
	}
	if err != nil {
		return nil, errors.Wrapf(err, "invalid %s input", s.config.Encoding)
	}

	s.log.WithField("encoding", s.config.Encoding).WithField("size", len(data)).Debug("decoded input")
	return data, nil
}

func (s *session) write(v interface{}) error {
	return write(s.stdout, s.config.Output, v)
}

func runInstruction(s *session, args []string) error {
	data, err := s.input(args[0])
	if err != nil {
		return err
	}

	decoded, err := yieldex.DecodeInstructionData(data)
	if err != nil {
		return err
	}
	return s.write(renderInstruction(decoded))
}

func renderInstruction(decoded *yieldex.DecodedInstruction) object {
	return object{
		{Key: "instruction", Value: decoded.Def.Name},
		{Key: "discriminator", Value: decoded.Def.Discriminator.String()},
		{Key: "args", Value: render(decoded.Args)},
	}
}

func runAccount(s *session, args []string) error {
	data, err := s.input(args[0])
	if err != nil {
		return err
	}

	kind, value, err := yieldex.DecodeAccount(data)
	if err != nil {
		return err
	}
	if kind.IsZeroCopy() && len(data) > kind.Size {
		s.log.WithField("account", kind.Name).WithField("extra", len(data)-kind.Size).Info("ignoring bytes past the account layout")
	}

	return s.write(object{
		{Key: "account", Value: kind.Name},
		{Key: "zero_copy", Value: kind.IsZeroCopy()},
		{Key: "data", Value: render(value)},
	})
}

func runEvent(s *session, args []string) error {
	data, err := s.input(args[0])
	if err != nil {
		return err
	}

	var ev yieldex.Event
	if bytes.HasPrefix(data, yieldex.EventInstructionTag[:]) {
		ev, err = yieldex.DecodeEventInstructionData(data)
	} else {
		ev, err = yieldex.DecodeEvent(data)
	}
	if err != nil {
		return err
	}
	return s.write(renderEvent(ev))
}

func renderEvent(ev yieldex.Event) object {
	return object{
		{Key: "event", Value: ev.EventName()},
		{Key: "data", Value: render(ev)},
	}
}

func runLogs(s *session, args []string) error {
	r := s.stdin
	if len(args) > 0 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return errors.Wrap(err, "failed to open log file")
		}
		defer f.Close()
		r = f
	}

	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "failed to read logs")
	}

	events, err := yieldex.ParseProgramDataLogs(lines)
	if err != nil {
		return err
	}
	s.log.WithField("lines", len(lines)).WithField("events", len(events)).Debug("parsed program logs")

	out := make([]interface{}, len(events))
	for i, ev := range events {
		out[i] = renderEvent(ev)
	}
	return s.write(out)
}

func runIndexes(s *session, args []string) error {
	def, ok := yieldex.LookupInstruction(args[0])
	if !ok {
		return errors.Errorf("unknown instruction %q", args[0])
	}

	indexes, err := s.indexInput(args[1])
	if err != nil {
		return err
	}

	named, trailing, err := def.ResolveAccountIndexes(indexes)
	if err != nil {
		return err
	}

	accounts := make(object, len(named))
	for i, index := range named {
		accounts[i] = entry{Key: def.Accounts[i].Name, Value: index}
	}
	return s.write(object{
		{Key: "instruction", Value: def.Name},
		{Key: "accounts", Value: accounts},
		{Key: "trailing", Value: trailing},
	})
}

// indexInput accepts either encoded bytes or a comma separated list of
// decimal indexes.
func (s *session) indexInput(arg string) ([]byte, error) {
	if !strings.Contains(arg, ",") {
		return s.input(arg)
	}

	var indexes []byte
	for _, part := range strings.Split(arg, ",") {
		index, err := strconv.ParseUint(strings.TrimSpace(part), 10, 8)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid account index %q", part)
		}
		indexes = append(indexes, byte(index))
	}
	return indexes, nil
}

func runTransaction(s *session, args []string) error {
	data, err := s.input(args[0])
	if err != nil {
		return err
	}

	var m solana.Message
	var tx solana.Transaction
	if txErr := tx.Unmarshal(data); txErr == nil {
		m = tx.Message
	} else if err := m.Unmarshal(data); err != nil {
		s.log.WithError(txErr).Debug("input is not a transaction")
		return errors.Wrap(err, "input is neither a transaction nor a message")
	}
	if len(m.AddressTableLookups) > 0 {
		s.log.WithField("lookups", len(m.AddressTableLookups)).Warn("accounts loaded from lookup tables are not resolved")
	}

	out := make([]interface{}, 0, len(m.Instructions))
	for i, ix := range m.Instructions {
		entries := object{
			{Key: "index", Value: i},
			{Key: "program", Value: render(m.Accounts[ix.ProgramIndex])},
		}

		decompiled, err := yieldex.DecompileInstructionForProgram(s.programID, m, i)
		switch {
		case errors.Is(err, solana.ErrIncorrectProgram):
			entries = append(entries, entry{Key: "data", Value: hex.EncodeToString(ix.Data)})
		case err != nil:
			entries = append(entries, entry{Key: "error", Value: err.Error()})
		default:
			accounts := make(object, len(decompiled.Accounts))
			for j, account := range decompiled.Accounts {
				accounts[j] = entry{Key: account.Role.Name, Value: render(account.PublicKey)}
			}
			entries = append(entries, renderInstruction(&decompiled.DecodedInstruction)...)
			entries = append(entries,
				entry{Key: "accounts", Value: accounts},
				entry{Key: "remaining", Value: render(decompiled.Remaining)},
			)
		}
		out = append(out, entries)
	}
	return s.write(out)
}

func runCatalog(s *session, _ []string) error {
	var instructions []interface{}
	for _, def := range yieldex.Instructions() {
		roles := make([]string, len(def.Accounts))
		for i, role := range def.Accounts {
			roles[i] = role.Name + roleFlags(role)
		}
		instructions = append(instructions, object{
			{Key: "name", Value: def.Name},
			{Key: "discriminator", Value: def.Discriminator.String()},
			{Key: "accounts", Value: roles},
		})
	}

	var accounts []interface{}
	for _, kind := range yieldex.AccountKinds() {
		entries := object{
			{Key: "name", Value: kind.Name},
			{Key: "discriminator", Value: kind.Discriminator.String()},
		}
		if kind.IsZeroCopy() {
			entries = append(entries, entry{Key: "size", Value: kind.Size})
		}
		accounts = append(accounts, entries)
	}

	return s.write(object{
		{Key: "program_id", Value: s.config.ProgramID},
		{Key: "instructions", Value: instructions},
		{Key: "accounts", Value: accounts},
		{Key: "events", Value: yieldex.EventNames()},
	})
}

func roleFlags(role yieldex.AccountRole) string {
	var flags string
	if role.IsWritable {
		flags += "w"
	}
	if role.IsSigner {
		flags += "s"
	}
	if flags == "" {
		return ""
	}
	return "(" + flags + ")"
}
