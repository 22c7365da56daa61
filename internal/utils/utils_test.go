package utils

import (
	"reflect"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestSetLogLevel(t *testing.T) {
	defer Log.SetLevel(logrus.InfoLevel)

	for in, want := range map[string]logrus.Level{
		"debug":   logrus.DebugLevel,
		"INFO":    logrus.InfoLevel,
		"warning": logrus.WarnLevel,
		"warn":    logrus.WarnLevel,
		"error":   logrus.ErrorLevel,
		"fatal":   logrus.FatalLevel,
	} {
		if err := SetLogLevel(in); err != nil {
			t.Fatalf("SetLogLevel(%q): %v", in, err)
		}
		if Log.GetLevel() != want {
			t.Fatalf("SetLogLevel(%q) set %v", in, Log.GetLevel())
		}
	}

	if err := SetLogLevel("trace"); err == nil {
		t.Fatalf("expected error for unsupported level")
	}
}

func TestSplitList(t *testing.T) {
	got := SplitList(" UST, NET,,BHSA ,")
	want := []string{"UST", "NET", "BHSA"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("want %#v, got %#v", want, got)
	}
	if SplitList("") != nil {
		t.Fatalf("expected nil for empty input")
	}
}
