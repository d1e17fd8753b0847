package intern

// NoHandleFound - Custom error to inform that no handle was found
type NoHandleFound struct {
	msg string
}

// Error - Used to notify that no handle was found
func (E NoHandleFound) Error() string {
	if E.msg == "" {
		return "no handle found"
	}
	return E.msg
}
