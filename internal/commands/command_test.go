package commands

import (
	"errors"
	"testing"
)

func TestParseSupportedCommands(t *testing.T) {
	cases := []struct {
		in       string
		typeWant Type
	}{
		{"/ask should I work out today", TypeAsk},
		{"refresh", TypeRefresh},
		{"show insights", TypeShow},
		{"log symptom mild cramps", TypeLog},
		{"/log day 14", TypeLog},
	}

	for _, tc := range cases {
		cmd, err := Parse(tc.in)
		if err != nil {
			t.Fatalf("parse %q failed: %v", tc.in, err)
		}
		if cmd.Type != tc.typeWant {
			t.Fatalf("parse %q type = %s, want %s", tc.in, cmd.Type, tc.typeWant)
		}
	}
}

func TestParseAskJoinsMessage(t *testing.T) {
	cmd, err := Parse("/ask how tired am I")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Ask == nil || cmd.Ask.Message != "how tired am I" {
		t.Fatalf("unexpected ask args: %#v", cmd.Ask)
	}
}

func TestParseShowRejectsUnknownSubject(t *testing.T) {
	_, err := Parse("show tasks")
	if err == nil {
		t.Fatal("expected error")
	}
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeInvalidArgument {
		t.Fatalf("expected invalid argument error, got %v", err)
	}
}

func TestParseLogDay(t *testing.T) {
	cmd, err := Parse("log day 22")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Log == nil || cmd.Log.Kind != LogDay || cmd.Log.Day != 22 {
		t.Fatalf("unexpected log args: %#v", cmd.Log)
	}

	_, err = Parse("log day zero")
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeInvalidArgument {
		t.Fatalf("expected invalid argument error, got %v", err)
	}
}

func TestParseUnknownCommand(t *testing.T) {
	_, err := Parse("/unknown do x")
	if err == nil {
		t.Fatal("expected error")
	}
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeUnknownCommand {
		t.Fatalf("expected unknown command error, got %v", err)
	}
}

func TestExecuteDispatch(t *testing.T) {
	cmd, err := Parse("/ask can I train hard")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	called := false
	res, err := Execute(cmd, Handlers{
		Ask: func(a AskArgs) (Result, error) {
			called = true
			if a.Message != "can I train hard" {
				t.Fatalf("unexpected message: %q", a.Message)
			}
			return Result{Message: "ok"}, nil
		},
	})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if !called || res.Message != "ok" {
		t.Fatalf("dispatch failed, called=%v res=%+v", called, res)
	}
}

func TestExecuteMissingHandler(t *testing.T) {
	cmd, err := Parse("show cycle")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	_, err = Execute(cmd, Handlers{})
	if err == nil {
		t.Fatal("expected error")
	}
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeHandlerMissing {
		t.Fatalf("expected missing handler error, got %v", err)
	}
}
