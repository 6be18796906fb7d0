package models

import "fmt"

type PushCode string

const (
	PushNewApplication      PushCode = "NEW_APPLICATION"
	PushApplicationAccepted PushCode = "APPLICATION_ACCEPTED"
)

type PushCodeData struct {
	Title string
	Msg   string
}

var PushCodeMap = map[PushCode]PushCodeData{
	PushNewApplication: {
		Title: "New Applicant",
		Msg:   "%v applied for %v",
	},
	PushApplicationAccepted: {
		Title: "Application Accepted",
		Msg:   "You have been hired for %v. You can now contact %v.",
	},
}

type NotificationData struct {
	Code  PushCode
	Msg   string
	Title string
}

func GetPushNewApplication(jobTitle, workerName string) NotificationData {
	code := PushNewApplication
	return NotificationData{
		Code:  code,
		Title: PushCodeMap[code].Title,
		Msg:   fmt.Sprintf(PushCodeMap[code].Msg, workerName, jobTitle),
	}
}

func GetPushApplicationAccepted(jobTitle, companyName string) NotificationData {
	code := PushApplicationAccepted
	if companyName == "" {
		companyName = "the employer"
	}
	return NotificationData{
		Code:  code,
		Title: PushCodeMap[code].Title,
		Msg:   fmt.Sprintf(PushCodeMap[code].Msg, jobTitle, companyName),
	}
}
