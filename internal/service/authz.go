// File: internal/service/authz.go
package service

// OwnerOrAdmin is the single authorization rule for files and charts:
// the caller must own the resource or hold the admin flag. It is
// evaluated fresh on every operation; there is no cached permission
// state.
func OwnerOrAdmin(claims *CustomClaims, ownerID int) bool {
	if claims == nil {
		return false
	}
	return claims.UserID == ownerID || claims.IsAdmin
}
