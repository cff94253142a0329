// Package middlewares provides middleware for foundation Handlers.
//
// Every middleware has the signature func(next HandlerFunc) HandlerFunc and
// works on *foundation.Request and *foundation.Response values, so it composes
// with foundation.WithMiddleware.
//
// # Recover
//
// Recover middleware catches panics and converts them to typed errors.
// The default ErrorHandler renders a PanicError as 500.
//
//	h := foundation.NewHandler(show,
//	    foundation.WithMiddleware(
//	        middlewares.Recover(middlewares.WithRecoverLogger(log)),
//	    ),
//	)
//
// # Timeout
//
// Timeout middleware replaces the request context with one that expires and
// returns a TimeoutError, which the default ErrorHandler renders as 504.
// The handler goroutine continues after timeout; watch r.Context().Done().
//
//	foundation.WithMiddleware(
//	    middlewares.Timeout(5*time.Second),
//	)
//
// # CORS
//
// CORS middleware handles Cross-Origin Resource Sharing headers.
// It answers preflight (OPTIONS) requests and decorates returned responses.
//
//	foundation.WithMiddleware(
//	    middlewares.CORS(
//	        middlewares.WithAllowOrigins("https://app.example.com"),
//	        middlewares.WithAllowCredentials(),
//	    ),
//	)
//
// # Locale
//
// Locale middleware picks the request locale from an explicit "_locale"
// attribute, query parameter or cookie, falling back to Accept-Language
// negotiation, and stores it with Request.SetLocale.
//
//	foundation.WithMiddleware(
//	    middlewares.Locale([]string{"en", "pl", "de"}),
//	)
//
// # Recommended Middleware Order
//
//	foundation.WithMiddleware(
//	    middlewares.CORS(),                 // First: answer preflight before other processing
//	    middlewares.Recover(),              // Second: catch panics from timeout and handlers
//	    middlewares.Timeout(5*time.Second), // Third: enforce timeout
//	    middlewares.Locale(locales),        // Fourth: resolve locale for business logic
//	)
package middlewares
