package convo

// SampleConversation returns the fixed demonstration dataset. Each call
// returns a fresh slice, so callers may not affect each other.
func SampleConversation() Conversation {
	return Conversation{
		{Author: "Colleague", Body: "Hey, take a look at Jetpack Compose, it's great!"},
		{Author: "Colleague", Body: "Test...Test...Test..."},
		{
			Author: "Colleague",
			Body: "I think Kotlin is my favorite programming language.\n" +
				"It's so much fun!",
		},
		{Author: "Colleague", Body: "Searching for alternatives to XML layouts..."},
		{
			Author: "Colleague",
			Body: "Hey, take a look at Jetpack Compose, it's great!\n" +
				"It's the Android's modern toolkit for building native UI. " +
				"It simplifies and accelerates UI development on Android. " +
				"Less code, powerful tools, and intuitive Kotlin APIs :)",
		},
		{Author: "Colleague", Body: "It's available from API 21+ :)"},
		{Author: "Colleague", Body: "Writing Kotlin for UI seems so natural, Compose where have you been all my life?"},
		{Author: "Colleague", Body: "Android Studio next version's name is Arctic Fox"},
		{Author: "Colleague", Body: "Android Studio Arctic Fox tooling for Compose is top notch ^_^"},
		{Author: "Colleague", Body: "I didn't know you can now run the emulator directly from Android Studio"},
		{Author: "Colleague", Body: "Compose Previews are great to check quickly how a composable layout looks like"},
		{Author: "Colleague", Body: "Previews are also interactive after enabling the experimental setting"},
		{Author: "Colleague", Body: "Have you tried writing build.gradle with KTS?"},
	}
}

// MinimalConversation returns the dataset of the earliest, minimal revision
// of the screen: a single message with no avatar or expansion behavior.
func MinimalConversation() Conversation {
	return Conversation{
		{Author: "Android", Body: "Jetpack Compose"},
	}
}
