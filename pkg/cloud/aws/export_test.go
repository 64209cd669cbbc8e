package aws

var (
	NewEC2ClientFunc = &newEC2Client
	NewS3ClientFunc  = &newS3Client
)
