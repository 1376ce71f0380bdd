package unravel

import "testing"

func TestDigest_KnownVectors(t *testing.T) {
	tests := []struct {
		algo DigestAlgo
		in   string
		want string
	}{
		{DigestSHA256, "", "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
		{DigestSHA256, "hello", "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"},
		{DigestSHA3_256, "", "a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a"},
	}

	for _, tt := range tests {
		t.Run(string(tt.algo), func(t *testing.T) {
			got, err := Digest(tt.algo, tt.in)
			if err != nil {
				t.Fatalf("Digest() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Digest(%s, %q) = %s, want %s", tt.algo, tt.in, got, tt.want)
			}
		})
	}
}

func TestDigest_Lengths(t *testing.T) {
	tests := []struct {
		algo DigestAlgo
		want int
	}{
		{DigestSHA256, 64},
		{DigestSHA512, 128},
		{DigestSHA3_256, 64},
		{DigestBLAKE2b256, 64},
	}

	for _, tt := range tests {
		t.Run(string(tt.algo), func(t *testing.T) {
			got, err := Digest(tt.algo, "你好")
			if err != nil {
				t.Fatalf("Digest() error: %v", err)
			}
			if len(got) != tt.want {
				t.Errorf("len(Digest()) = %d, want %d", len(got), tt.want)
			}
		})
	}
}

func TestDigest_Deterministic(t *testing.T) {
	for algo := range digesters {
		a, _ := Digest(algo, "payload")
		b, _ := Digest(algo, "payload")
		c, _ := Digest(algo, "payload!")
		if a != b {
			t.Errorf("%s: same input produced different digests", algo)
		}
		if a == c {
			t.Errorf("%s: different inputs produced the same digest", algo)
		}
	}
}

func TestDigest_Unknown(t *testing.T) {
	if _, err := Digest("md5", "x"); err == nil {
		t.Error("Digest(md5) should return error")
	}
}

func TestIsValidDigestAlgo(t *testing.T) {
	tests := []struct {
		algo DigestAlgo
		want bool
	}{
		{DigestSHA256, true},
		{DigestSHA512, true},
		{DigestSHA3_256, true},
		{DigestBLAKE2b256, true},
		{"md5", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsValidDigestAlgo(tt.algo); got != tt.want {
			t.Errorf("IsValidDigestAlgo(%q) = %v, want %v", tt.algo, got, tt.want)
		}
	}
}
