package discovery

import "testing"

func TestDevice_String(t *testing.T) {
	tests := []struct {
		name   string
		device *Device
		want   string
	}{
		{
			name: "with board",
			device: &Device{
				Hostname: "esp32-livingroom.local.",
				IP:       "192.168.4.16",
				Port:     3232,
				Board:    "esp32dev",
			},
			want: "esp32-livingroom.local. (esp32dev) at 192.168.4.16:3232",
		},
		{
			name: "without board",
			device: &Device{
				Hostname: "d1mini-garage.local",
				IP:       "10.0.0.5",
				Port:     8266,
			},
			want: "d1mini-garage.local at 10.0.0.5:8266",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.device.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDevice_UploadTarget(t *testing.T) {
	device := &Device{Hostname: "esp32.local", IP: "192.168.4.16", Port: 3232}
	if got := device.UploadTarget(); got != "192.168.4.16" {
		t.Errorf("UploadTarget() = %q, want the IP", got)
	}
}

func TestDevice_GetMetadata(t *testing.T) {
	device := &Device{Metadata: map[string]string{"board": "esp32dev"}}

	if got := device.GetMetadata("board"); got != "esp32dev" {
		t.Errorf("GetMetadata(board) = %q, want esp32dev", got)
	}
	if got := device.GetMetadata("missing"); got != "" {
		t.Errorf("GetMetadata(missing) = %q, want empty", got)
	}

	var empty Device
	if got := empty.GetMetadata("board"); got != "" {
		t.Errorf("GetMetadata on nil metadata = %q, want empty", got)
	}
}
