/*
Package shopsdk provides a client SDK for the storefront catalog-and-order REST service.

# Overview

The service answers every request with an envelope:

	{"success": true, "data": {...}, "Message": "..."}

The SDK unwraps data on success and turns everything else into an *APIError
carrying the HTTP status and the service's Message (or a per-operation
fallback such as "Login failed."). A 401 is never unwrapped: it always comes
back as an *APIError that matches ErrUnauthorized.

# Client vs Session

  - Client: public operations (auth endpoints, catalog) and Session factory
  - Session: bearer-token operations (profile, cart, favorites, addresses,
    orders, back office)

	client := shopsdk.NewClient("http://localhost:5126/api/")

	token, err := client.Login(ctx, shopsdk.LoginRequest{Email: email, Password: pw})

	page, err := client.ListProducts(ctx, shopsdk.ProductQuery{SearchTerm: "mug"})

A Session reads its token from a TokenSource on every request, so a single
Session can outlive any number of logins:

	session := client.NewSession(tokens)

	lines, err := session.GetCart(ctx)
	err = session.UpsertCartItem(ctx, productID, 2)

# Unauthorized Signal

Set Client.Notifier to be told about stale credentials. When a Session
request comes back 401 and the token it carried has an exp claim in the
past, the notifier is called exactly once for that request. A 401 with a
fresh, malformed or missing token never signals; the caller just gets the
error.

	client.Notifier = shopsdk.NotifierFunc(func() {
		// show "session expired", log out, go to /login
	})

# Roles

Back-office calls require the Admin role. With Client.CheckRoles (the
default) the SDK reads the token's role claim and fails with ErrMissingRole
without a round trip. The service checks again either way.

# Error Handling

	if errors.Is(err, shopsdk.ErrUnauthorized) {
		// prompt for login
	}

	fmt.Println(shopsdk.Message(err, "Something went wrong."))

Transport failures are wrapped as "failed to send request: ..." and never
retried.
*/
package shopsdk
