package handlers_test

import (
	"fmt"
	"net/http"
	"testing"
)

func TestCreateCart(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(jsonReq("POST", "/api/cart", `{"sessionId":"sess-1"}`))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	var body struct {
		SessionID string `json:"sessionId"`
	}
	decodeBody(t, resp, &body)
	if body.SessionID != "sess-1" {
		t.Fatalf("bad body: %+v", body)
	}

	// Same session again: still one cart, still 201 (upsert semantics).
	resp2, err := app.Test(jsonReq("POST", "/api/cart", `{"sessionId":"sess-1"}`))
	if err != nil {
		t.Fatal(err)
	}
	if resp2.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201 on repeat, got %d", resp2.StatusCode)
	}
}

func TestCreateCartRejectsBadSessionID(t *testing.T) {
	app, _ := newTestApp(t)

	for name, body := range map[string]string{
		"missing": `{}`,
		"empty":   `{"sessionId":""}`,
		"toolong": fmt.Sprintf(`{"sessionId":%q}`, make101()),
	} {
		resp, err := app.Test(jsonReq("POST", "/api/cart", body))
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", name, resp.StatusCode)
		}
	}
}

func make101() string {
	s := make([]byte, 101)
	for i := range s {
		s[i] = 'x'
	}
	return string(s)
}

func TestAddItemMergeAndStatusCodes(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(jsonReq("POST", "/api/cart/sess-add/items", `{"productId":1,"quantity":2}`))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("first add expected 201, got %d", resp.StatusCode)
	}
	var first struct {
		CartItemID int64 `json:"cartItemId"`
	}
	decodeBody(t, resp, &first)

	resp2, err := app.Test(jsonReq("POST", "/api/cart/sess-add/items", `{"productId":1,"quantity":3}`))
	if err != nil {
		t.Fatal(err)
	}
	if resp2.StatusCode != http.StatusOK {
		t.Fatalf("merge expected 200, got %d", resp2.StatusCode)
	}
	var second struct {
		CartItemID int64 `json:"cartItemId"`
	}
	decodeBody(t, resp2, &second)
	if first.CartItemID != second.CartItemID {
		t.Fatalf("merge created a new row: %d vs %d", first.CartItemID, second.CartItemID)
	}

	listResp, err := app.Test(jsonReq("GET", "/api/cart/sess-add", ""))
	if err != nil {
		t.Fatal(err)
	}
	var lines []struct {
		CartItemID int64   `json:"cart_item_id"`
		Quantity   int     `json:"quantity"`
		ProductID  int64   `json:"product_id"`
		Price      float64 `json:"price"`
	}
	decodeBody(t, listResp, &lines)
	if len(lines) != 1 || lines[0].Quantity != 5 {
		t.Fatalf("want one line with quantity 5, got %+v", lines)
	}
}

func TestAddItemValidation(t *testing.T) {
	app, _ := newTestApp(t)

	cases := map[string]string{
		"zero product":    `{"productId":0}`,
		"unknown product": `{"productId":999999}`,
		"zero quantity":   `{"productId":1,"quantity":0}`,
		"huge quantity":   `{"productId":1,"quantity":101}`,
	}
	for name, body := range cases {
		resp, err := app.Test(jsonReq("POST", "/api/cart/sess-val/items", body))
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", name, resp.StatusCode)
		}
	}

	// Omitted quantity defaults to 1.
	resp, err := app.Test(jsonReq("POST", "/api/cart/sess-val/items", `{"productId":2}`))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("default quantity add expected 201, got %d", resp.StatusCode)
	}
}

func TestUpdateQuantityAndZeroDeletes(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(jsonReq("POST", "/api/cart/sess-upd/items", `{"productId":1,"quantity":2}`))
	if err != nil {
		t.Fatal(err)
	}
	var added struct {
		CartItemID int64 `json:"cartItemId"`
	}
	decodeBody(t, resp, &added)

	putURL := fmt.Sprintf("/api/cart/sess-upd/items/%d", added.CartItemID)

	resp2, err := app.Test(jsonReq("PUT", putURL, `{"quantity":9}`))
	if err != nil {
		t.Fatal(err)
	}
	if resp2.StatusCode != http.StatusOK {
		t.Fatalf("update expected 200, got %d", resp2.StatusCode)
	}
	var updated struct {
		CartItemID int64 `json:"cartItemId"`
		Quantity   int   `json:"quantity"`
	}
	decodeBody(t, resp2, &updated)
	if updated.Quantity != 9 {
		t.Fatalf("quantity not overwritten: %+v", updated)
	}

	// Quantity 0 deletes the line.
	resp3, err := app.Test(jsonReq("PUT", putURL, `{"quantity":0}`))
	if err != nil {
		t.Fatal(err)
	}
	if resp3.StatusCode != http.StatusNoContent {
		t.Fatalf("zero quantity expected 204, got %d", resp3.StatusCode)
	}

	listResp, err := app.Test(jsonReq("GET", "/api/cart/sess-upd", ""))
	if err != nil {
		t.Fatal(err)
	}
	var lines []map[string]any
	decodeBody(t, listResp, &lines)
	if len(lines) != 0 {
		t.Fatalf("deleted line still listed: %+v", lines)
	}

	// Missing quantity is a validation error.
	resp4, err := app.Test(jsonReq("PUT", putURL, `{}`))
	if err != nil {
		t.Fatal(err)
	}
	if resp4.StatusCode != http.StatusBadRequest {
		t.Fatalf("missing quantity expected 400, got %d", resp4.StatusCode)
	}
}

func TestRemoveItemIdempotent(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(jsonReq("POST", "/api/cart/sess-rm/items", `{"productId":3}`))
	if err != nil {
		t.Fatal(err)
	}
	var added struct {
		CartItemID int64 `json:"cartItemId"`
	}
	decodeBody(t, resp, &added)

	delURL := fmt.Sprintf("/api/cart/sess-rm/items/%d", added.CartItemID)
	for i := 0; i < 2; i++ {
		resp, err := app.Test(jsonReq("DELETE", delURL, ""))
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != http.StatusNoContent {
			t.Fatalf("delete #%d expected 204, got %d", i+1, resp.StatusCode)
		}
	}
}

func TestCrossSessionMutationIsNoOp(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(jsonReq("POST", "/api/cart/sess-victim/items", `{"productId":1,"quantity":2}`))
	if err != nil {
		t.Fatal(err)
	}
	var added struct {
		CartItemID int64 `json:"cartItemId"`
	}
	decodeBody(t, resp, &added)

	// Another session tries to delete the victim's line by guessing its id.
	delURL := fmt.Sprintf("/api/cart/sess-attacker/items/%d", added.CartItemID)
	resp2, err := app.Test(jsonReq("DELETE", delURL, ""))
	if err != nil {
		t.Fatal(err)
	}
	if resp2.StatusCode != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp2.StatusCode)
	}

	listResp, err := app.Test(jsonReq("GET", "/api/cart/sess-victim", ""))
	if err != nil {
		t.Fatal(err)
	}
	var lines []map[string]any
	decodeBody(t, listResp, &lines)
	if len(lines) != 1 {
		t.Fatalf("victim's cart was mutated: %+v", lines)
	}
}

func TestListCartUnknownSessionEmptyArray(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(jsonReq("GET", "/api/cart/never-used", ""))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var lines []map[string]any
	decodeBody(t, resp, &lines)
	if len(lines) != 0 {
		t.Fatalf("expected empty array, got %+v", lines)
	}
}
