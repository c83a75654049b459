package token

import "testing"

func TestDecodeRequest(t *testing.T) {
	req, err := DecodeRequest([]byte(` {"room":"r1","username":"alice","userId":"u1","extra":[1,2]} `))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if req != (Request{Room: "r1", Username: "alice", UserID: "u1"}) {
		t.Fatalf("unexpected request %+v", req)
	}
}

func TestDecodeRequest_RejectsTrailingData(t *testing.T) {
	for _, body := range []string{
		`{"room":"r1","username":"alice","userId":"u1"} garbage`,
		`{"room":"r1","username":"alice","userId":"u1"}{"x":1}`,
	} {
		if _, err := DecodeRequest([]byte(body)); err == nil {
			t.Fatalf("expected error for %q", body)
		}
	}
}

func TestDecodeRequest_KeysAreCaseSensitive(t *testing.T) {
	req, err := DecodeRequest([]byte(`{"ROOM":"x","USERID":"u","userid":"u1","Username":"alice"}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if req != (Request{}) {
		t.Fatalf("expected no fields bound, got %+v", req)
	}
}

func TestDecodeRequest_NullAndWrongTypes(t *testing.T) {
	req, err := DecodeRequest([]byte(`{"room":null,"userId":"u1"}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if req.Room != "" || req.UserID != "u1" {
		t.Fatalf("unexpected request %+v", req)
	}

	for _, body := range []string{`{"userId":42}`, `{"room":true}`, `[]`, `"r1"`, ``} {
		if _, err := DecodeRequest([]byte(body)); err == nil {
			t.Fatalf("expected error for %q", body)
		}
	}
}

func TestDecodeRequest_NullBody(t *testing.T) {
	req, err := DecodeRequest([]byte(`null`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if err := req.Validate(); err == nil {
		t.Fatal("expected validation error for empty request")
	}
}
