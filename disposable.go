package beans

// Disposable is implemented by singletons holding resources.
// The provider closes them, in reverse creation order, when it is closed.
//
// Example:
//
//	type Repository struct {
//	    conn *sql.DB
//	}
//
//	func (r *Repository) Close() error {
//	    return r.conn.Close()
//	}
type Disposable interface {
	Close() error
}
