package payment

import "testing"

func TestVerifySignature(t *testing.T) {
	const secret = "rzp-test-secret"

	sig := SignPayment("order_abc123", "pay_def456", secret)
	if !VerifySignature("order_abc123", "pay_def456", sig, secret) {
		t.Fatalf("expected signature to verify")
	}
}

func TestVerifySignatureSingleByteMutation(t *testing.T) {
	const secret = "rzp-test-secret"

	sig := SignPayment("order_abc123", "pay_def456", secret)
	for i := 0; i < len(sig); i++ {
		mutated := []byte(sig)
		if mutated[i] == '0' {
			mutated[i] = '1'
		} else {
			mutated[i] = '0'
		}
		if VerifySignature("order_abc123", "pay_def456", string(mutated), secret) {
			t.Fatalf("mutated signature at byte %d unexpectedly verified", i)
		}
	}
}

func TestVerifySignatureWrongInputs(t *testing.T) {
	const secret = "rzp-test-secret"

	sig := SignPayment("order_abc123", "pay_def456", secret)
	if VerifySignature("order_other", "pay_def456", sig, secret) {
		t.Fatalf("signature verified against the wrong order id")
	}
	if VerifySignature("order_abc123", "pay_other", sig, secret) {
		t.Fatalf("signature verified against the wrong payment id")
	}
	if VerifySignature("order_abc123", "pay_def456", sig, "other-secret") {
		t.Fatalf("signature verified with the wrong secret")
	}
}
