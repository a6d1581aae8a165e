package main

import "testing"

func TestConnectHint(t *testing.T) {
	tests := []struct {
		addr string
		want string
	}{
		{":23234", "ssh localhost -p 23234"},
		{":2222", "ssh localhost -p 2222"},
		{"0.0.0.0:2022", "ssh localhost -p 2022"},
		{"[::]:2022", "ssh localhost -p 2022"},
		{"play.example.com:4000", "ssh play.example.com -p 4000"},
		{"127.0.0.1:22", "ssh 127.0.0.1"},
		{"hangman.local", "ssh hangman.local"},
	}

	for _, tt := range tests {
		if got := connectHint(tt.addr); got != tt.want {
			t.Errorf("connectHint(%q) = %q, want %q", tt.addr, got, tt.want)
		}
	}
}
