package zeroauth

import (
	"context"
	"testing"

	"github.com/paybr/cielo_facade/internal/result"
)

type recordingGateway struct {
	calls    int
	response result.Result[Response]
}

func (g *recordingGateway) VerifyCard(_ context.Context, _ Payload) result.Result[Response] {
	g.calls++
	return g.response
}

func TestVerifyHappyPath(t *testing.T) {
	gw := &recordingGateway{response: result.OK(Response{
		Valid:               true,
		ReturnCode:          "00",
		ReturnMessage:       "Transacao autorizada",
		IssuerTransactionId: "580027442382078",
	})}
	svc := NewService(gw, nil)

	payload := validPayload()
	res := svc.Verify(context.Background(), &payload)
	if !res.Success || !res.Data.Valid {
		t.Fatalf("unexpected outcome: %+v", res)
	}
	if gw.calls != 1 {
		t.Fatalf("expected one gateway call, got %d", gw.calls)
	}
}

func TestVerifyValidationFailureNeverReachesGateway(t *testing.T) {
	gw := &recordingGateway{}
	svc := NewService(gw, nil)

	payload := validPayload()
	payload.CardOnFile.Reason = ReasonRecurring // mismatched with First

	res := svc.Verify(context.Background(), &payload)
	if res.Success || res.Code != result.KindValidationError || res.StatusCode != 400 {
		t.Fatalf("expected validation failure, got %+v", res)
	}
	if gw.calls != 0 {
		t.Fatalf("gateway was called %d times", gw.calls)
	}
}

func TestVerifyNilPayload(t *testing.T) {
	svc := NewService(&recordingGateway{}, nil)

	res := svc.Verify(context.Background(), nil)
	if res.Success || res.Code != result.KindValidationError {
		t.Fatalf("expected structured failure, got %+v", res)
	}
}

func TestResponseGatewayErrorShape(t *testing.T) {
	outcome := Response{Valid: true, ReturnCode: "00"}
	if outcome.IsGatewayError() {
		t.Fatal("verification outcome misclassified as gateway error")
	}

	gwErr := Response{Code: 126, Message: "Credit Card Expiration Date is invalid"}
	if !gwErr.IsGatewayError() {
		t.Fatal("gateway error shape not recognized")
	}
}
