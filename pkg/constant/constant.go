package constant

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "auth-token"

// User-facing response messages. The sign-in failure message must stay
// identical for unknown emails and wrong passwords, and the forgot-password
// message must not depend on whether the account exists.
const (
	MsgUserCreated     = "User created successfully"
	MsgLoggedIn        = "Logged in successfully"
	MsgLoggedOut       = "Logged out successfully"
	MsgForgotPassword  = "If an account exists with that email, password reset instructions have been sent."
	MsgUnauthorized    = "Unauthorized"
	MsgInternalFailure = "Something went wrong"
)

// SignInRedirectPath is where the session gate sends requests that hit a
// protected prefix without a session cookie.
const SignInRedirectPath = "/auth/signin"
