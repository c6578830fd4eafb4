//
// oauth1 signs HTTP requests with the OAuth 1.0a HMAC-SHA1 scheme.
//

// Build the merged request parameters
//  params, err := oauth1.ParamsFrom(decoded)
//  params.Apply("count=15")
//
// Sign a request
//  signer := oauth1.NewSigner(credentials)
//  header, err := signer.Authorize(oauth1.MethodGet, url, params)
package oauth1
