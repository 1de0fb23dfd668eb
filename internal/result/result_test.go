package result

import "testing"

func TestFromStatus(t *testing.T) {
	cases := []struct {
		status int
		code   Kind
		retry  bool
	}{
		{400, KindBadRequest, false},
		{401, KindAuthenticationErr, false},
		{403, KindForbidden, false},
		{404, KindNotFound, false},
		{405, KindMethodNotAllowed, false},
		{500, KindServerError, true},
		{502, KindServerError, true},
		{503, KindServiceUnavailable, true},
		{418, KindUnknownError, false},
		{599, KindUnknownError, true},
	}

	for _, tc := range cases {
		msg, code, retry := FromStatus(tc.status)
		if code != tc.code || retry != tc.retry {
			t.Errorf("FromStatus(%d) = (%q, %v), want (%q, %v)", tc.status, code, retry, tc.code, tc.retry)
		}
		if msg == "" {
			t.Errorf("FromStatus(%d) returned empty message", tc.status)
		}
	}
}

func TestForwardPreservesFailure(t *testing.T) {
	src := Fail[int]("boom", KindServiceUnavailable, 503)
	src.ShouldRetry = true

	dst := Forward[string](src)
	if dst.Success || dst.Error != "boom" || dst.Code != KindServiceUnavailable ||
		dst.StatusCode != 503 || !dst.ShouldRetry {
		t.Fatalf("forwarded result lost fields: %+v", dst)
	}
}

func TestOKAndInvalid(t *testing.T) {
	ok := OK("data")
	if !ok.Success || ok.StatusCode != 200 || ok.Data != "data" {
		t.Fatalf("unexpected OK shape: %+v", ok)
	}

	bad := Invalid[string]("nope")
	if bad.Success || bad.StatusCode != 400 || bad.Code != KindValidationError {
		t.Fatalf("unexpected Invalid shape: %+v", bad)
	}

	internal := Internal[string]("broken invariant")
	if internal.StatusCode != 500 || internal.Code != KindValidationError {
		t.Fatalf("unexpected Internal shape: %+v", internal)
	}
}
