package generator

import "testing"

func TestIsSafeURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{"正常なパブリックURL", "https://www.google.com/favicon.ico", false},
		{"パブリックIPの直接指定", "https://8.8.8.8/image.png", false},

		{"不正なスキーム", "gopher://example.com", true},
		{"ループバック", "http://localhost/admin", true},
		{"ループバックIP", "http://127.0.0.1/admin", true},
		{"プライベートIP (クラスA)", "http://10.255.255.254/metadata", true},
		{"プライベートIP (クラスC)", "http://192.168.1.1/router", true},
		{"リンクローカル (メタデータサーバー)", "http://169.254.169.254/computeMetadata", true},
		{"名前解決できないドメイン", "http://this.should.not.exist.invalid", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			safe, err := isSafeURL(tt.url)
			if (err != nil) != tt.wantErr {
				t.Errorf("isSafeURL() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && !safe {
				t.Errorf("%s: safe URL was flagged as unsafe", tt.url)
			}
			if tt.wantErr && safe {
				t.Errorf("%s: unsafe URL was flagged as safe", tt.url)
			}
		})
	}
}
