package serialport

import (
	"testing"

	"go.bug.st/serial"
)

func TestBuildMode(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		want    serial.Mode
		wantErr bool
	}{
		{
			name: "typical 115200 8N1",
			cfg:  Config{BaudRate: 115200, DataBits: 8, Parity: "none", StopBits: "1"},
			want: serial.Mode{BaudRate: 115200, DataBits: 8, Parity: serial.NoParity, StopBits: serial.OneStopBit},
		},
		{
			name: "zero values fall back to 9600 8N1",
			cfg:  Config{},
			want: serial.Mode{BaudRate: 9600, DataBits: 8, Parity: serial.NoParity, StopBits: serial.OneStopBit},
		},
		{
			name: "even parity two stop bits",
			cfg:  Config{BaudRate: 2400, DataBits: 7, Parity: "even", StopBits: "2"},
			want: serial.Mode{BaudRate: 2400, DataBits: 7, Parity: serial.EvenParity, StopBits: serial.TwoStopBits},
		},
		{
			name: "odd parity",
			cfg:  Config{BaudRate: 9600, DataBits: 8, Parity: "odd", StopBits: "1"},
			want: serial.Mode{BaudRate: 9600, DataBits: 8, Parity: serial.OddParity, StopBits: serial.OneStopBit},
		},
		{
			name: "one and a half stop bits",
			cfg:  Config{BaudRate: 9600, DataBits: 5, StopBits: "1.5"},
			want: serial.Mode{BaudRate: 9600, DataBits: 5, Parity: serial.NoParity, StopBits: serial.OnePointFiveStopBits},
		},
		{
			name:    "unknown parity",
			cfg:     Config{Parity: "bogus"},
			wantErr: true,
		},
		{
			name:    "unknown stop bits",
			cfg:     Config{StopBits: "3"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := buildMode(tt.cfg)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("buildMode() error = %v", err)
			}
			if *got != tt.want {
				t.Errorf("buildMode() = %+v, want %+v", *got, tt.want)
			}
		})
	}
}

func TestSortPortNames(t *testing.T) {
	names := []string{
		"/dev/ttyUSB10",
		"/dev/ttyS2",
		"/dev/ttyUSB2",
		"/dev/ttyS11",
		"/dev/ttyUSB1",
	}

	sortPortNames(names)

	want := []string{
		"/dev/ttyS2",
		"/dev/ttyS11",
		"/dev/ttyUSB1",
		"/dev/ttyUSB2",
		"/dev/ttyUSB10",
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("position %d = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestValidBaudRate(t *testing.T) {
	for _, rate := range SupportedBaudRates {
		if !ValidBaudRate(rate) {
			t.Errorf("ValidBaudRate(%d) = false, want true", rate)
		}
	}

	for _, rate := range []int{0, -1, 110, 14400, 1000000} {
		if ValidBaudRate(rate) {
			t.Errorf("ValidBaudRate(%d) = true, want false", rate)
		}
	}
}
