package mq_client

type Exchange struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

type Queue struct {
	Name    string `yaml:"name"`
	Durable bool   `yaml:"durable"`
}

type Binding struct {
	Queue      string `yaml:"queue"`
	CleanStart bool   `yaml:"clean_start"`
	Exchange   string `yaml:"exchange"`
}

type MQClientConfig struct {
	Exchange struct {
		Notification Exchange `yaml:"notification"`
		Events       Exchange `yaml:"events"`
	}
	Queue struct {
		ReminderNotifier Queue `yaml:"reminder_notifier"`
		RollupWriter     Queue `yaml:"rollup_writer"`
	}
	Binding struct {
		ReminderNotifier Binding `yaml:"reminder_notifier"`
		RollupWriter     Binding `yaml:"rollup_writer"`
	}
}
