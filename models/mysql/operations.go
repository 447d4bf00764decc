package mysql

// DialOutRecord is one attempted callback call placement
type DialOutRecord struct {
	ID                    int64  `json:"id"`
	RequestID             string `json:"request_id"`
	CreatedTime           string `json:"created_time"`
	UpdatedTime           string `json:"updated_time"`
	FromPhoneNumber       string `json:"from_phone_number"`
	ToPhoneNumber         string `json:"to_phone_number"`
	SipMediaApplicationID string `json:"sip_media_application_id"`
	Status                string `json:"status"`
	Tries                 int    `json:"tries"`
}

// InsertDialOutRecord inserts the dial-out attempt record
func InsertDialOutRecord(
	requestID string,
	fromPhoneNumber string,
	toPhoneNumber string,
	sipMediaApplicationID string,
) error {
	insertQuery := "INSERT INTO dialout_records (`request_id`, `created_time`, `updated_time`, `from_phone_number`, `to_phone_number`, `sip_media_application_id`, `status`, `tries`) VALUES (?, NOW(), NOW(), ?, ?, ?, 'scheduled', 0);"
	insStmt, err := dbConn.Prepare(insertQuery)
	if err != nil {
		return err
	}
	defer insStmt.Close()
	_, err = insStmt.Exec(requestID, fromPhoneNumber, toPhoneNumber, sipMediaApplicationID)
	if err != nil {
		return err
	}
	return nil
}

// UpdateDialOutStatus updates the status of a dial-out attempt
func UpdateDialOutStatus(requestID string, status string, tries int) error {
	updateQuery := "UPDATE dialout_records SET status = ?, tries = ?, updated_time = NOW() WHERE request_id = ?;"
	updStmt, err := dbConn.Prepare(updateQuery)
	if err != nil {
		return err
	}
	defer updStmt.Close()
	_, err = updStmt.Exec(status, tries, requestID)
	if err != nil {
		return err
	}
	return nil
}
