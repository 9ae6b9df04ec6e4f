package password

import "testing"

func TestHashAndVerify(t *testing.T) {
	digest, err := Hash("s3cret-pass")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if digest == "s3cret-pass" {
		t.Fatalf("digest equals plaintext")
	}
	if !Verify("s3cret-pass", digest) {
		t.Fatalf("Verify rejected the original password")
	}
	if Verify("wrong-pass", digest) {
		t.Fatalf("Verify accepted a wrong password")
	}
}

func TestHashIsSalted(t *testing.T) {
	a, err := Hash("same-input")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	b, err := Hash("same-input")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if a == b {
		t.Fatalf("two hashes of the same input are equal; salt missing")
	}
}

func TestVerifyMalformedDigest(t *testing.T) {
	for _, digest := range []string{"", "not-a-bcrypt-digest", "$2a$broken"} {
		if Verify("anything", digest) {
			t.Fatalf("Verify accepted malformed digest %q", digest)
		}
	}
}
